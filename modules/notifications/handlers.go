package notifications

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/pushkit/handler"
	"github.com/dmitrymomot/pushkit/pkg/logger"
	"github.com/dmitrymomot/pushkit/pkg/notifications"
)

type listRequest struct {
	Limit      int  `query:"limit"`
	Skip       int  `query:"skip"`
	UnreadOnly bool `query:"unreadOnly"`
}

type idRequest struct {
	ID string `path:"id"`
}

func (m *Module) list(ctx handler.Context, req listRequest) handler.Response {
	userID, ok := m.identity(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}
	if req.Limit < 0 || req.Skip < 0 {
		return handler.JSONError(handler.ErrBadRequest.WithMessage("limit and skip must not be negative"))
	}

	res, err := m.svc.ListForUser(ctx, userID, notifications.ListOptions{
		Limit:      req.Limit,
		Skip:       req.Skip,
		UnreadOnly: req.UnreadOnly,
	})
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(res)
}

func (m *Module) markRead(ctx handler.Context, req idRequest) handler.Response {
	userID, ok := m.identity(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}

	n, err := m.svc.MarkRead(ctx, req.ID, userID)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(map[string]any{"notification": n},
		handler.WithMessage("Notification marked as read"))
}

func (m *Module) markAllRead(ctx handler.Context, _ struct{}) handler.Response {
	userID, ok := m.identity(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}

	changed, err := m.svc.MarkAllRead(ctx, userID)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(map[string]any{"modifiedCount": changed},
		handler.WithMessage("All notifications marked as read"))
}

func (m *Module) delete(ctx handler.Context, req idRequest) handler.Response {
	userID, ok := m.identity(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}

	if err := m.svc.Delete(ctx, req.ID, userID); err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(nil, handler.WithMessage("Notification deleted"))
}

func (m *Module) deleteAll(ctx handler.Context, _ struct{}) handler.Response {
	userID, ok := m.identity(ctx)
	if !ok {
		return handler.JSONError(handler.ErrUnauthorized)
	}

	deleted, err := m.svc.DeleteAll(ctx, userID)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(map[string]any{"deletedCount": deleted},
		handler.WithMessage("All notifications deleted"))
}

func (m *Module) fail(ctx handler.Context, err error) handler.Response {
	switch {
	case errors.Is(err, notifications.ErrNotFound):
		return handler.JSONError(handler.ErrNotFound.WithMessage("Notification not found").Wrap(err))
	case errors.Is(err, notifications.ErrInvalidRecipient):
		return handler.JSONError(handler.ErrUnauthorized.Wrap(err))
	}

	m.logger.LogAttrs(ctx, slog.LevelError, "notification request failed",
		slog.String("method", ctx.Request().Method),
		slog.String("path", ctx.Request().URL.Path),
		logger.Error(err),
	)
	return handler.JSONError(err)
}
