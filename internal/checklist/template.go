package checklist

import "time"

// templateEntry pairs a category with an item name.
type templateEntry struct {
	category string
	name     string
}

// standardItems is the base inspection list applied to every revision.
var standardItems = []templateEntry{
	// Engine and lubrication
	{"Motor", "Óleo do motor"},
	{"Motor", "Filtro de óleo"},
	{"Motor", "Filtro de ar"},
	{"Motor", "Velas de ignição"},
	{"Motor", "Verificar vazamentos de óleo/fluídos"},

	// Transmission
	{"Transmissão", "Corrente (tensão e lubrificação)"},
	{"Transmissão", "Coroa e pinhão"},
	{"Transmissão", "Folga/desgaste da transmissão"},

	// Brakes
	{"Freios", "Pastilhas de freio dianteiras"},
	{"Freios", "Pastilhas de freio traseiras"},
	{"Freios", "Fluido de freio"},
	{"Freios", "Discos de freio"},

	// Tires and wheels
	{"Pneus", "Pneu dianteiro"},
	{"Pneus", "Pneu traseiro"},
	{"Pneus", "Rodas/raios"},

	// Suspension
	{"Suspensão", "Bengalas dianteiras (vazamento)"},
	{"Suspensão", "Amortecedor traseiro"},

	// Electrics
	{"Elétrica", "Bateria"},
	{"Elétrica", "Farol alto/baixo"},
	{"Elétrica", "Setas"},
	{"Elétrica", "Luz de freio"},
	{"Elétrica", "Iluminação do painel"},

	// Safety / test ride
	{"Segurança", "Retrovisores"},
	{"Segurança", "Manetes e cabos"},
	{"Segurança", "Retorno do acelerador"},
	{"Segurança", "Ruídos anormais no teste"},
}

// mileageTier lists extra items that apply once the odometer passes a
// threshold. Tiers are cumulative.
type mileageTier struct {
	threshold int
	items     []templateEntry
}

var mileageTiers = []mileageTier{
	{10000, []templateEntry{
		{"Motor", "Verificar tensão da correia (se aplicável)"},
		{"Transmissão", "Verificar desgaste da corrente"},
	}},
	{15000, []templateEntry{
		{"Motor", "Verificar sistema de arrefecimento"},
		{"Elétrica", "Verificar sistema de carga"},
	}},
	{20000, []templateEntry{
		{"Motor", "Verificar válvulas"},
		{"Motor", "Verificar compressão do motor"},
		{"Suspensão", "Verificar rolamentos das rodas"},
	}},
	{25000, []templateEntry{
		{"Transmissão", "Verificar desgaste da coroa e pinhão"},
		{"Elétrica", "Verificar cabos e conexões"},
	}},
	{30000, []templateEntry{
		{"Transmissão", "Troca de correia/corrente (se aplicável)"},
		{"Motor", "Limpeza de bico injetor/carburador"},
		{"Suspensão", "Verificar amortecedores (vazamento)"},
	}},
	{40000, []templateEntry{
		{"Motor", "Verificar sistema de escape"},
		{"Elétrica", "Verificar alternador/regulador"},
	}},
	{50000, []templateEntry{
		{"Motor", "Verificar cabeçote e junta"},
		{"Transmissão", "Verificar caixa de câmbio"},
		{"Suspensão", "Revisão completa da suspensão"},
	}},
}

// TemplateItems returns the standard inspection items plus the
// mileage-specific additions for the given odometer reading, all pending
// with zero cost. Duplicates across tiers are removed keeping order.
func TemplateItems(odometer int) []Item {
	entries := make([]templateEntry, 0, len(standardItems)+8)
	entries = append(entries, standardItems...)

	seen := make(map[templateEntry]bool, 8)
	for _, tier := range mileageTiers {
		if odometer < tier.threshold {
			break
		}
		for _, e := range tier.items {
			if seen[e] {
				continue
			}
			seen[e] = true
			entries = append(entries, e)
		}
	}

	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = Item{
			Name:     e.name,
			Category: e.category,
			Status:   StatusPending,
		}
	}
	return items
}

// NewFromTemplate builds a checklist for the vehicle with the adaptive
// template item set, dated today when revisionDate is empty.
func NewFromTemplate(vehicle Vehicle, odometer int, revisionDate string) *Checklist {
	if revisionDate == "" {
		revisionDate = time.Now().Format(revisionDateLayout)
	}
	c := &Checklist{
		Vehicle:      vehicle,
		Odometer:     odometer,
		RevisionDate: revisionDate,
		Items:        TemplateItems(odometer),
	}
	c.Refresh()
	return c
}
