package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - export: Write the collection to a JSON file
// - import: Load a JSON export into the configured store
// - seed:   Fill an empty local store with demo shipments
// - backup: Write an export to the backup archive
// - backups: List stored backups, newest first

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	backupCmd := flag.NewFlagSet("backup", flag.ExitOnError)
	backupsCmd := flag.NewFlagSet("backups", flag.ExitOnError)

	exportOut := exportCmd.String("out", "shipments-export.json", "Output file, - for stdout")
	importIn := importCmd.String("in", "", "Export file to import, - for stdin")
	backupsLimit := backupsCmd.Int("n", 0, "Show at most n backups, 0 for all")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := ctlFlags{
		Export:  exportFlags{cmd: exportCmd, out: exportOut},
		Import:  importFlags{cmd: importCmd, in: importIn},
		Seed:    seedCmd,
		Backup:  backupCmd,
		Backups: backupsFlags{cmd: backupsCmd, limit: backupsLimit},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Export  exportFlags
	Import  importFlags
	Seed    *flag.FlagSet
	Backup  *flag.FlagSet
	Backups backupsFlags
}

type backupsFlags struct {
	cmd   *flag.FlagSet
	limit *int
}

type exportFlags struct {
	cmd *flag.FlagSet
	out *string
}

type importFlags struct {
	cmd *flag.FlagSet
	in  *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "export":
		if err := flags.Export.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse export flags")
		}

		return withApp(ctx, func(a *app) error { return a.runExport(ctx, *flags.Export.out) })
	case "import":
		if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse import flags")
		}
		if *flags.Import.in == "" {
			return errors.New("--in flag is required for import command")
		}

		return withApp(ctx, func(a *app) error { return a.runImport(ctx, *flags.Import.in) })
	case "seed":
		if err := flags.Seed.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse seed flags")
		}

		return withApp(ctx, func(a *app) error { return a.runSeed(ctx) })
	case "backup":
		if err := flags.Backup.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse backup flags")
		}

		return withApp(ctx, func(a *app) error { return a.runBackup(ctx) })
	case "backups":
		if err := flags.Backups.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse backups flags")
		}

		return withApp(ctx, func(a *app) error { return a.runBackups(ctx, *flags.Backups.limit) })
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func printUsage() {
	fmt.Println("Usage: shipctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  export    Write the collection to a JSON file")
	fmt.Println("  import    Load a JSON export into the configured store")
	fmt.Println("  seed      Fill an empty local store with demo shipments")
	fmt.Println("  backup    Write an export to the backup archive")
	fmt.Println("  backups   List stored backups, newest first")
	fmt.Println("")
	fmt.Println("Use 'shipctl <command> -h' for more information about a command.")
}
