package cli

import (
	"github.com/charmbracelet/log"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/fs"
	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/todo"
	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/vcs"
)

// app holds what every command needs for one invocation.
type app struct {
	cfg    *todo.Config
	fsys   fs.FS
	logger *log.Logger
	prompt Prompter
	render *renderer
	git    vcs.Git
}

// document is the loaded document of one command.
type document struct {
	store *todo.Store
	list  *todo.List
}

// withDocument locates, opens, and loads the document, runs fn, and closes
// the document again.
func (a *app) withDocument(fn func(doc *document) error) (err error) {
	path, err := todo.Locate(a.fsys, a.cfg.EffectiveCwd, a.cfg.File)
	if err != nil {
		return err
	}

	a.logger.Debug("document located", "path", path)

	store, err := todo.Open(a.fsys, path)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	list, err := store.Load()
	if err != nil {
		return err
	}

	a.logger.Debug("records loaded", "count", list.Len())

	return fn(&document{store: store, list: list})
}

// save writes list over the document.
func (a *app) save(doc *document, list *todo.List) error {
	if err := doc.store.Save(list); err != nil {
		return err
	}

	doc.list = list

	a.logger.Debug("document saved", "path", doc.store.Path(), "records", list.Len())

	return nil
}
