package main

import (
	"airdrop-recipients/domain"
	"airdrop-recipients/errors"
	"airdrop-recipients/infrastructure/sigscore"
	"airdrop-recipients/infrastructure/table"
	"airdrop-recipients/internal"
	"airdrop-recipients/services"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Exit codes for the preview tool.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const (
	sourceMiners = "miners"
	sourceCSV    = "csv"
	sourceList   = "list"
)

type flags struct {
	source      string
	minHashrate float64
	file        string
	delimiter   string
	noSniff     bool
	addresses   string
	amount      float64
}

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recipients: %v\n", err)
	}
	os.Exit(code)
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("recipients", flag.ContinueOnError)
	fs.StringVar(&f.source, "source", sourceList, "recipient source: miners, csv or list")
	fs.Float64Var(&f.minHashrate, "min-hashrate", 0, "minimum hashrate kept from miners (unset keeps all)")
	fs.StringVar(&f.file, "file", "", "path of the recipient table (csv source)")
	fs.StringVar(&f.delimiter, "delimiter", ",", "cell separator of the recipient table")
	fs.BoolVar(&f.noSniff, "no-sniff", false, "read the table without checking its content type")
	fs.StringVar(&f.addresses, "addresses", "", "comma separated addresses (list source)")
	fs.Float64Var(&f.amount, "amount", 0, "amount given to every address (list source)")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}

	minHashrateSet := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "min-hashrate" {
			minHashrateSet = true
		}
	})
	if !minHashrateSet {
		f.minHashrate = domain.NoHashrateFilter
	}
	return f, nil
}

func run(args []string, out io.Writer) (int, error) {
	// A missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	f, err := parseFlags(args)
	if err != nil {
		return exitConfig, err
	}

	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := services.NewRecipientService(sigscore.NewClient(config, log), log)

	recipients, code, err := build(ctx, svc, f)
	if err != nil {
		return code, err
	}

	render(out, recipients)
	return exitOK, nil
}

func build(ctx context.Context, svc services.IRecipientService, f flags) ([]domain.AirdropRecipient, int, error) {
	switch f.source {
	case sourceMiners:
		recipients, err := svc.FromMiners(ctx, f.minHashrate)
		if err != nil {
			return nil, exitRuntime, err
		}
		return recipients, exitOK, nil
	case sourceCSV:
		if f.file == "" {
			return nil, exitConfig, fmt.Errorf("-file is required for the %s source", sourceCSV)
		}
		delimiter, err := parseDelimiter(f.delimiter)
		if err != nil {
			return nil, exitConfig, err
		}
		recipients, err := svc.FromCSV(f.file, table.WithDelimiter(delimiter), table.WithSniff(!f.noSniff))
		if err != nil {
			return nil, exitRuntime, err
		}
		return recipients, exitOK, nil
	case sourceList:
		return svc.FromList(splitAddresses(f.addresses), f.amount), exitOK, nil
	default:
		return nil, exitConfig, fmt.Errorf("%w: %q", errors.ErrUnknownSource, f.source)
	}
}

// parseDelimiter accepts the single runes encoding/csv can split on.
func parseDelimiter(raw string) (rune, error) {
	delimiter, size := utf8.DecodeRuneInString(raw)
	if size == 0 || size != len(raw) {
		return 0, fmt.Errorf("-delimiter must be a single character, got %q", raw)
	}
	switch delimiter {
	case '"', '\r', '\n', utf8.RuneError:
		return 0, fmt.Errorf("-delimiter cannot be %q", delimiter)
	}
	return delimiter, nil
}

func splitAddresses(raw string) []string {
	parts := lo.Map(strings.Split(raw, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	return lo.Compact(parts)
}

func render(out io.Writer, recipients []domain.AirdropRecipient) {
	writer := tablewriter.NewWriter(out)
	writer.SetHeader([]string{"#", "Address", "Amount", "Hashrate"})
	writer.SetAutoWrapText(false)
	writer.SetAutoFormatHeaders(true)
	writer.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	writer.SetAlignment(tablewriter.ALIGN_LEFT)
	writer.SetCenterSeparator("")
	writer.SetColumnSeparator("")
	writer.SetRowSeparator("")
	writer.SetHeaderLine(false)
	writer.SetBorder(false)
	writer.SetTablePadding("\t")

	for i, r := range recipients {
		writer.Append([]string{
			strconv.Itoa(i + 1),
			r.Address,
			strconv.FormatFloat(r.Amount, 'f', -1, 64),
			strconv.FormatFloat(r.Hashrate, 'f', -1, 64),
		})
	}
	writer.Render()

	summary := fmt.Sprintf("%d recipients, total amount %s",
		len(recipients), strconv.FormatFloat(domain.TotalAmount(recipients), 'f', -1, 64))
	fmt.Fprintln(out, color.New(color.FgGreen, color.OpBold).Sprint(summary))
}
