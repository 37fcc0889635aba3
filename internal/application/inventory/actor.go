package inventory

import "context"

// SystemActor autor de operaciones sin usuario autenticado (p. ej. reversiones automáticas).
const SystemActor = "System"

type actorKey struct{}

// WithActor devuelve un contexto que identifica al usuario que ejecuta la operación.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext devuelve el usuario del contexto o SystemActor si no hay.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok && v != "" {
		return v
	}
	return SystemActor
}
