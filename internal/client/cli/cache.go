package cli

import (
	"context"
	"path/filepath"

	"github.com/gerich15/TemplateHub/internal/client/repositories/library"
	"github.com/gerich15/TemplateHub/internal/client/session"
)

const libraryCacheFile = "library.db"

// openLibraryCache opens the offline library cache next to the session file.
func openLibraryCache(ctx context.Context, store *session.Store) (*library.SQLiteRepository, func() error, error) {
	db, err := library.Open(ctx, filepath.Join(store.Dir(), libraryCacheFile))
	if err != nil {
		return nil, nil, err
	}
	return library.NewSQLiteRepository(db), db.Close, nil
}
