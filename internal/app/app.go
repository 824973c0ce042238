package app

import (
	"io"

	"coursecat/internal/config"
	"coursecat/internal/course"
	"coursecat/internal/session"
	"coursecat/internal/shell"

	"go.uber.org/zap"
)

// App bundles the configuration, logger and loader shared by every command.
type App struct {
	Config *config.Config
	Loader *course.Loader
	Logger *zap.Logger
}

// NewApp builds the loader from cfg.
func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	return &App{
		Config: cfg,
		Loader: course.NewLoader(cfg.Catalog.DelimiterRune(), logger),
		Logger: logger,
	}
}

// NewSession starts a session with an empty catalog.
func (a *App) NewSession() *session.Session {
	return session.New(a.Logger)
}

// Shell builds a menu shell over in and out using the app loader.
func (a *App) Shell(in io.Reader, out io.Writer) *shell.Shell {
	return shell.New(in, out, a.Loader, a.Config.Catalog.ValidateOnLoad)
}

// RunInteractive starts a session, loads the configured file if any, and
// runs the menu until exit.
func (a *App) RunInteractive(in io.Reader, out io.Writer) error {
	sess := a.NewSession()
	defer sess.End()

	sh := a.Shell(in, out)
	if a.Config.Catalog.File != "" {
		sh.HandleLoad(sess, a.Config.Catalog.File)
	}

	return sh.Run(sess)
}

// LoadCatalog loads path with the configured delimiter.
func (a *App) LoadCatalog(path string) (*course.Catalog, error) {
	return a.Loader.Load(path)
}
