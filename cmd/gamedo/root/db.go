package root

import (
	"context"
	"database/sql"

	"gamedo/internal/game"
	"gamedo/internal/storage"
	"gamedo/internal/ui"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*game.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := game.NewService(db)

	// Color the CLI with the player's active theme. Falls back to the default
	// styling if the record can't be read.
	if p, err := svc.Progress(ctx); err == nil {
		if theme, ok := game.ThemeByID(p.Theme); ok {
			ui.ApplyTheme(theme.Primary, theme.Accent)
		}
	}
	return svc, cleanup, nil
}
