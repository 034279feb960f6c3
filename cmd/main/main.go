package main

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/gitprompt/internal/app"
	"github.com/maxbolgarin/gitprompt/internal/config"
	"github.com/maxbolgarin/gitprompt/internal/model"
	"github.com/maxbolgarin/gitprompt/internal/server"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
)

var (
	Version, Branch, Commit, BuildDate string
)

var (
	configPath = kingpin.Flag("config", "path to config file").Short('c').String()
	envFile    = kingpin.Flag("env-file", "path to .env file to preload").String()
	repository = kingpin.Flag("repository", "path to the git repository").Short('r').String()
	excludes   = kingpin.Flag("excludes", "glob pattern of changed files to drop from output, may be repeated").Strings()
	format     = kingpin.Flag("format", "output format: json or text").Enum("json", "text")

	serveCmd  = kingpin.Command("serve", "run the MCP server (default)").Default()
	serveRepo = serveCmd.Arg("repository", "path to the git repository").String()

	diffCmd      = kingpin.Command("diff", "print the git-diff prompt between the ancestor and HEAD")
	diffAncestor = diffCmd.Arg("ancestor", "ancestor commit hash or branch name").Required().String()

	cachedDiffCmd = kingpin.Command("cached-diff", "print the staged diff prompt")

	messagesCmd      = kingpin.Command("commit-messages", "print commit messages between the ancestor and HEAD")
	messagesAncestor = messagesCmd.Arg("ancestor", "ancestor commit hash or branch name").Required().String()

	prDescCmd      = kingpin.Command("pr-desc", "print the PR description prompt for the ancestor")
	prDescAncestor = prDescCmd.Arg("ancestor", "ancestor commit hash or branch name").Required().String()

	commitMsgCmd   = kingpin.Command("commit-message", "print the commit message prompt for the staged changes")
	commitMsgCount = commitMsgCmd.Flag("count", "number of recent commits to use as a style reference").Default("5").Int()
)

func main() {
	command := kingpin.Parse()

	var err error
	ctx := contem.New(contem.WithLogger(logze.DefaultPtr()), contem.Exit(&err))
	defer ctx.Shutdown()

	err = run(ctx, command)
	if err != nil {
		logze.DefaultPtr().Error("cannot run", "error", err)
	}
}

func run(ctx contem.Context, command string) error {
	// stdout belongs to the MCP transport, logs must stay on stderr
	logze.Init(logze.C().WithConsole().WithLevel(logze.LevelInfo))

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			return erro.Wrap(err, "load env file")
		}
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		return erro.Wrap(err, "load config")
	}
	applyFlags(&cfg)

	service, err := app.New(ctx, cfg)
	if err != nil {
		return erro.Wrap(err, "new app")
	}

	if command == serveCmd.FullCommand() {
		return serve(ctx, service)
	}

	out, err := runCommand(ctx, service, command)
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

// applyFlags overrides config values with explicitly passed CLI flags.
func applyFlags(cfg *config.Config) {
	cfg.Repository = lang.Check(*serveRepo, cfg.Repository)
	cfg.Repository = lang.Check(*repository, cfg.Repository)
	if len(*excludes) > 0 {
		cfg.Excludes = *excludes
	}
	if *format != "" {
		cfg.Format = model.Format(*format)
	}
}

func serve(ctx contem.Context, service *app.App) error {
	srv, err := server.New(service.Config().Server, lang.Check(Version, "dev"), service)
	if err != nil {
		return erro.Wrap(err, "new server")
	}
	ctx.Add(srv.Stop)

	if err := srv.Start(ctx); err != nil {
		return erro.Wrap(err, "run server")
	}
	return nil
}

func runCommand(ctx context.Context, service *app.App, command string) (string, error) {
	switch command {
	case diffCmd.FullCommand():
		return service.DiffPrompt(ctx, *diffAncestor)
	case cachedDiffCmd.FullCommand():
		return service.CachedDiffPrompt(ctx)
	case messagesCmd.FullCommand():
		return service.CommitMessages(ctx, *messagesAncestor)
	case prDescCmd.FullCommand():
		return service.PRDescriptionPrompt(ctx, *prDescAncestor)
	case commitMsgCmd.FullCommand():
		return service.CommitMessagePrompt(ctx, *commitMsgCount)
	}
	return "", erro.New("unknown command: %s", command)
}
