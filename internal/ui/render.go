package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vloureiro/garagem/internal/checklist"
)

// renderMain composes the full screen: header, item table, aggregate footer,
// the active input line and the toast area.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderItems())
	b.WriteString("\n")
	b.WriteString(m.renderTotals())
	b.WriteString("\n")
	b.WriteString(m.renderInputLine())
	b.WriteString("\n")
	b.WriteString(m.renderToast())

	return b.String()
}

func (m Model) renderHeader() string {
	c := m.view.Checklist
	if c == nil {
		return m.styles.MutedText.Render("nenhum checklist carregado")
	}

	title := fmt.Sprintf("%s %s", c.Vehicle.Make, c.Vehicle.Model)
	if strings.TrimSpace(title) == "" {
		title = c.Vehicle.Plate
	}

	var badges []string
	if c.Finalized {
		badges = append(badges, m.styles.SuccessText.Render("finalizado"))
	}
	if c.Paid {
		badges = append(badges, m.styles.SuccessText.Render("pago"))
	}
	if c.ActualCost != nil {
		badges = append(badges, m.styles.InfoText.Render("real "+formatBRL(*c.ActualCost)))
	}

	line := m.styles.Header.Render(title) +
		m.styles.MutedText.Render(fmt.Sprintf(" %s · %d km · %s",
			c.Vehicle.Plate, c.Odometer, c.RevisionDate))
	if len(badges) > 0 {
		line += "  " + strings.Join(badges, " ")
	}
	return line
}

func (m Model) renderItems() string {
	items := m.items()
	if len(items) == 0 {
		return m.styles.MutedText.Render("  (sem itens; 'a' adiciona)")
	}

	nameWidth := 34
	if m.width > 0 && m.width-28 < nameWidth {
		nameWidth = m.width - 28
		if nameWidth < 10 {
			nameWidth = 10
		}
	}

	var b strings.Builder
	for i, item := range items {
		marker := "  "
		if m.view.Saving[item.ID] {
			marker = " " + m.spin.View()
		}

		cost := ""
		if item.EstimatedCost > 0 || item.Status == checklist.StatusNeedsReplacement {
			cost = formatBRL(item.EstimatedCost)
		}

		row := fmt.Sprintf("%s %-*s %-8s %10s",
			marker, nameWidth, truncate(item.Name, nameWidth), item.Status.Label(), cost)

		if i == m.selectedRow {
			b.WriteString(m.styles.Selected.Render(row))
		} else {
			b.WriteString(m.styles.statusStyle(item.Status).Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderTotals() string {
	c := m.view.Checklist
	if c == nil {
		return ""
	}
	return m.styles.Footer.Render(fmt.Sprintf(
		"pendentes %d · concluidos %d · trocas %d · ignorados %d · estimado %s",
		c.Pending, c.Completed, c.NeedsReplacement, c.Ignored,
		formatBRL(c.EstimatedTotal)))
}

func (m Model) renderInputLine() string {
	switch m.mode {
	case modeCost:
		return m.styles.AccentText.Render("custo estimado: ") + m.costInput.View()
	case modeAppend:
		return m.styles.AccentText.Render("novo item: ") +
			m.nameInput.View() +
			m.styles.MutedText.Render("  custo: ") +
			m.costInput.View()
	case modeActual:
		return m.styles.AccentText.Render("custo real da revisao: ") + m.costInput.View()
	}
	return m.styles.MutedText.Render(
		"1-4 status · e custo · a item · f finalizar · p pago · ? ajuda · q sair")
}

func (m Model) renderToast() string {
	if !m.hasToast {
		return ""
	}
	return m.styles.toastStyle(m.toast.Level).Render(m.toast.Message)
}

func (m Model) renderHelp() string {
	lines := []string{
		m.styles.AccentText.Render("Atalhos"),
		"",
		"  j/k, setas   navegar itens",
		"  1            marcar pendente",
		"  2            marcar concluido",
		"  3            marcar necessita troca",
		"  4            marcar ignorado",
		"  e, enter     editar custo estimado",
		"  a            adicionar item",
		"  f            finalizar (pede custo real) / reabrir",
		"  p            alternar pago",
		"  q, ctrl+c    sair",
		"",
		m.styles.MutedText.Render("qualquer tecla fecha esta tela"),
	}
	return strings.Join(lines, "\n")
}

// formatBRL renders an amount in Brazilian currency notation.
func formatBRL(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot+1:]

	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)

	out := "R$ " + strings.Join(parts, ".") + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

// truncate shortens a string to fit a column.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
