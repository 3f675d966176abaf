// Package wire provides dependency injection for the loom application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"

	cliadapter "github.com/example/loom/internal/adapters/cli"
	"github.com/example/loom/internal/adapters/filesystem"
	"github.com/example/loom/internal/adapters/sqlite"
	"github.com/example/loom/internal/app"
	"github.com/example/loom/internal/db"
	"github.com/example/loom/internal/logging"
	"github.com/example/loom/internal/ports/primary"
	"github.com/example/loom/internal/ports/secondary"
	"github.com/example/loom/internal/scaffold"
)

// Options selects how services are built. Set them with Configure before
// the first service is requested.
type Options struct {
	Verbose     bool
	DryRun      bool   // weave into an in-memory overlay instead of disk
	JournalPath string // empty means db.DefaultPath
}

var (
	options Options

	logger         *zap.Logger
	diskFS         *filesystem.OSFileSystem
	overlayFS      *filesystem.MemoryFileSystem
	weaveService   primary.WeaveService
	journalService primary.JournalService

	once        sync.Once
	journalOnce sync.Once
)

// Configure sets the options used when services are first built.
func Configure(opts Options) {
	options = opts
}

// Logger returns the singleton diagnostics logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// WeaveService returns the singleton WeaveService instance.
func WeaveService() primary.WeaveService {
	once.Do(initServices)
	return weaveService
}

// JournalService returns the singleton JournalService instance.
func JournalService() primary.JournalService {
	journalOnce.Do(initJournalService)
	return journalService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	logger, err = logging.New(options.Verbose)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	diskFS = filesystem.NewOSFileSystem()

	var fs secondary.FileSystem = diskFS
	var journal secondary.JournalWriter
	if options.DryRun {
		overlayFS = filesystem.NewOverlayFileSystem(diskFS)
		fs = overlayFS
	} else {
		journal = openJournalWriter()
	}

	console := cliadapter.NewConsoleWriter(os.Stdout)
	executor := app.NewEffectExecutor(fs, console, journal, logger)

	weaveService = app.NewWeaveService(executor, scaffold.NewGenerator())
}

// openJournalWriter opens the journal. A journal that cannot be opened is
// logged and skipped; weaving does not depend on it.
func openJournalWriter() secondary.JournalWriter {
	database, err := db.GetDB(options.JournalPath)
	if err != nil {
		logger.Warn("journal disabled", zap.Error(err))
		return nil
	}
	return sqlite.NewJournalWriterAdapter(sqlite.NewJournalRepository(database))
}

func initJournalService() {
	database, err := db.GetDB(options.JournalPath)
	if err != nil {
		log.Fatalf("failed to open journal: %v", err)
	}
	journalService = app.NewJournalService(sqlite.NewJournalRepository(database))
}

// WeaveAdapter returns a new WeaveAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func WeaveAdapter() *cliadapter.WeaveAdapter {
	return WeaveAdapterWithOutput(os.Stdout)
}

// WeaveAdapterWithOutput returns a new WeaveAdapter writing to the given output.
func WeaveAdapterWithOutput(out io.Writer) *cliadapter.WeaveAdapter {
	once.Do(initServices)
	return cliadapter.NewWeaveAdapter(weaveService, out)
}

// JournalAdapter returns a new JournalAdapter writing to stdout.
func JournalAdapter() *cliadapter.JournalAdapter {
	return cliadapter.NewJournalAdapter(JournalService(), os.Stdout)
}

// PreviewAdapter returns an adapter printing the dry-run overlay against
// disk, or nil when not in dry-run mode.
func PreviewAdapter(out io.Writer) *cliadapter.PreviewAdapter {
	once.Do(initServices)
	if overlayFS == nil {
		return nil
	}
	return cliadapter.NewPreviewAdapter(overlayFS, diskFS, out)
}
