package service

import "context"

type actorKey struct{}

// WithActor сохраняет в контексте логин пользователя, выполняющего запрос.
func WithActor(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, actorKey{}, login)
}

// ActorFrom возвращает логин из контекста или пустую строку.
func ActorFrom(ctx context.Context) string {
	login, _ := ctx.Value(actorKey{}).(string)
	return login
}
