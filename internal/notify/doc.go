// Package notify provides the application-scoped notification bus used to
// surface toasts from the reconciliation engine to the rendering layer.
// It replaces ambient global listener state with explicit typed
// subscribe/unsubscribe operations on a Bus instance.
package notify
