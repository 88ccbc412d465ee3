package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/quincysky/nameChecker/internal/api"
	"github.com/quincysky/nameChecker/internal/check"
	"github.com/quincysky/nameChecker/internal/decl"
	"github.com/quincysky/nameChecker/internal/parser"
	"github.com/quincysky/nameChecker/internal/reporting"
	"github.com/quincysky/nameChecker/internal/security"
	"github.com/quincysky/nameChecker/internal/shared"
	"github.com/quincysky/nameChecker/internal/storage"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "diff":
		diffCmd(os.Args[2:])
	case "serve":
		serveCmd(os.Args[2:])
	case "useradd":
		userAddCmd(os.Args[2:])
	case "version":
		fmt.Println("namecheck IR:", decl.Version)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `namecheck – naming convention advisor for declaration trees

Usage:
  namecheck check   --path <dump-dir> --out <reports-dir> [--config ./configs/namecheck.yaml]
  namecheck diff    --base <report.json> --head <report.json> --out <reports-dir>
  namecheck serve   [--addr :8080] [--db ./namecheck.db] [--config ./configs/namecheck.yaml]
  namecheck useradd --username <name> --password <pw> [--role viewer] [--db ./namecheck.db]
  namecheck version
`)
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	inPath := fs.String("path", "", "Path to declaration dump directory")
	outDir := fs.String("out", "", "Output directory for reports")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	// precedence: flags > config > defaults
	if *inPath == "" && len(cfg.Check.Sources) > 0 {
		*inPath = cfg.Check.Sources[0]
	}
	if *outDir == "" {
		*outDir = cfg.Reporting.OutDir
	}

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "check: --path (or check.sources in config) is required")
		os.Exit(2)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "check: cannot create out dir:", err)
		os.Exit(1)
	}

	// Parse
	run, diags := parser.Parse(*inPath)
	if len(diags.Warnings) > 0 {
		slog.Warn("parse warnings", "warnings", diags.Warnings)
	}
	run.ID = fmt.Sprintf("run-%d", time.Now().Unix())
	run.StartedAt = time.Now().UTC()

	// Check
	run.Advisories = check.Evaluate(&run)
	for _, a := range run.Advisories {
		slog.Warn("naming advisory", "path", a.Path, "kind", a.Kind, "msg", a.Message)
	}

	// Report
	jsonPath, _ := reporting.WriteJSON(run.ID, *outDir, &run)
	htmlPath, _ := reporting.WriteHTML(run.ID, *outDir, &run)
	slog.Info("check complete",
		"run", run.ID,
		"advisories", len(run.Advisories),
		"json", jsonPath,
		"html", htmlPath,
	)
	fmt.Printf("Check OK\n  Run: %s\n  Advisories: %d\n  JSON: %s\n  HTML: %s\n",
		run.ID, len(run.Advisories), jsonPath, htmlPath)
}

func diffCmd(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	base := fs.String("base", "", "Base report JSON path")
	head := fs.String("head", "", "Head report JSON path")
	outDir := fs.String("out", "", "Output directory")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *outDir == "" {
		*outDir = cfg.Reporting.OutDir
	}
	if *base == "" || *head == "" {
		fmt.Fprintln(os.Stderr, "diff: --base and --head are required")
		os.Exit(2)
	}

	br, err := reporting.ReadJSON(*base)
	if err != nil {
		slog.Error("load base report error", "err", err)
		os.Exit(1)
	}
	hr, err := reporting.ReadJSON(*head)
	if err != nil {
		slog.Error("load head report error", "err", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		slog.Error("cannot create out dir", "err", err)
		os.Exit(1)
	}
	path, _ := reporting.WriteDiffJSON(br.ID, hr.ID, *outDir, &br, &hr)
	fmt.Printf("Diff OK\n  %s\n", path)
}

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	addr := fs.String("addr", "", "Listen address")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	logger := shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *addr == "" {
		*addr = cfg.Server.Addr
	}
	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}

	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.CreateSchema(); err != nil {
		slog.Error("db schema error", "err", err)
		os.Exit(1)
	}

	srv := &api.Server{
		UserStore:       db,
		Logger:          logger,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		SessionDuration: time.Duration(cfg.Server.SessionHours) * time.Hour,
	}
	slog.Info("serving", "addr", *addr)
	if err := http.ListenAndServe(*addr, srv.Routes()); err != nil {
		slog.Error("serve error", "err", err)
		os.Exit(1)
	}
}

func userAddCmd(args []string) {
	fs := flag.NewFlagSet("useradd", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config (optional)")
	username := fs.String("username", "", "Username")
	password := fs.String("password", "", "Password")
	role := fs.String("role", "viewer", "Role (viewer|admin)")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)

	cfg, _ := shared.LoadConfig(*configPath)
	shared.InitLogger(cfg.Logging.Format, cfg.Logging.Level)

	if *dbPath == "" {
		*dbPath = cfg.Database.DSN
	}
	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "useradd: --username and --password are required")
		os.Exit(2)
	}

	hash, err := security.HashPassword(*password)
	if err != nil {
		slog.Error("hash error", "err", err)
		os.Exit(1)
	}
	db, err := storage.OpenSQLite(*dbPath)
	if err != nil {
		slog.Error("db open error", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.CreateSchema(); err != nil {
		slog.Error("db schema error", "err", err)
		os.Exit(1)
	}
	id, err := db.CreateUser(*username, hash, *role)
	if err != nil {
		slog.Error("create user error", "err", err)
		os.Exit(1)
	}
	fmt.Printf("User OK\n  ID: %d\n  Username: %s\n  Role: %s\n", id, *username, *role)
}
