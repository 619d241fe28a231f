package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"library-lending/config"
	"library-lending/library"
	"library-lending/logger"
)

type options struct {
	catalogDB   string
	borrowLimit int
	jsonOut     bool

	kind   string
	genre  string
	author string
	sortBy string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		os.Exit(1)
	}
	opts := &options{catalogDB: cfg.CatalogDB, borrowLimit: cfg.BorrowLimit}

	root := &cobra.Command{
		Use:           "library-lending",
		Short:         "Browse the catalog and borrow or download items",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.NewLogger(cfg.Log, "library-lending")
			defer log.Sync() //nolint:errcheck
			sess, err := openSession(cmd.Context(), opts, log)
			if err != nil {
				return err
			}
			interactive := term.IsTerminal(int(os.Stdin.Fd()))
			return runREPL(newShell(sess, cmd.InOrStdin(), cmd.OutOrStdout(), interactive, opts.jsonOut))
		},
	}
	root.PersistentFlags().StringVar(&opts.catalogDB, "catalog-db", opts.catalogDB, "SQLite catalog fixture (default: built-in seed)")
	root.PersistentFlags().IntVar(&opts.borrowLimit, "borrow-limit", opts.borrowLimit, "number of print items a user may hold")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print listings as JSON")

	list := &cobra.Command{
		Use:   "list",
		Short: "Print a catalog query and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.NewLogger(cfg.Log, "library-lending")
			defer log.Sync() //nolint:errcheck
			sess, err := openSession(cmd.Context(), opts, log)
			if err != nil {
				return err
			}
			q, err := buildQuery(opts.kind, opts.genre, opts.author)
			if err != nil {
				return err
			}
			view := sess.Query(q)
			switch strings.ToLower(opts.sortBy) {
			case "":
			case "title":
				view.SortByTitle()
			case "author":
				view.SortByAuthor()
			default:
				return errors.Errorf("unknown sort key %q", opts.sortBy)
			}
			sh := newShell(sess, cmd.InOrStdin(), cmd.OutOrStdout(), false, opts.jsonOut)
			sh.printItems(view.Items())
			return nil
		},
	}
	list.Flags().StringVar(&opts.kind, "kind", "", "physical (print) or digital")
	list.Flags().StringVar(&opts.genre, "genre", "", "genre, e.g. fantasy or \"science fiction\"")
	list.Flags().StringVar(&opts.author, "author", "", "exact author name")
	list.Flags().StringVar(&opts.sortBy, "sort", "", "title or author")

	root.AddCommand(list)
	return root
}

func openSession(ctx context.Context, opts *options, log *zap.Logger) (*library.Session, error) {
	var src library.CatalogSource = library.SeedSource{}
	if opts.catalogDB != "" {
		db, err := library.NewDatabase(opts.catalogDB, log)
		if err != nil {
			return nil, errors.Wrap(err, "open catalog db")
		}
		defer db.Close()
		src = db
	}
	catalog, err := library.LoadCatalog(ctx, src)
	if err != nil {
		return nil, err
	}
	log.Debug("catalog loaded", zap.Int("items", catalog.Len()), zap.String("source", opts.catalogDB))
	return library.NewSession(catalog, library.BorrowPolicy{Limit: opts.borrowLimit}, log), nil
}

func buildQuery(kind, genre, author string) (library.Query, error) {
	var q library.Query
	if strings.TrimSpace(kind) != "" {
		k, err := library.ParseKind(kind)
		if err != nil {
			return q, err
		}
		q.Kind = &k
	}
	if strings.TrimSpace(genre) != "" {
		g, err := library.ParseGenre(genre)
		if err != nil {
			return q, err
		}
		q.Genre = &g
	}
	q.Author = strings.TrimSpace(author)
	return q, nil
}

// ---------------------------------------------------------------------------
// REPL
// ---------------------------------------------------------------------------

type shell struct {
	sess        *library.Session
	sc          *bufio.Scanner
	out         io.Writer
	interactive bool
	jsonOut     bool

	// view is what the last listing showed; numbers typed at prompts index it.
	view *library.Catalog
}

func newShell(sess *library.Session, in io.Reader, out io.Writer, interactive, jsonOut bool) *shell {
	return &shell{
		sess:        sess,
		sc:          bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
		jsonOut:     jsonOut,
		view:        sess.Catalog(),
	}
}

func runREPL(sh *shell) error {
	if sh.interactive {
		fmt.Fprintln(sh.out, "Welcome to the Library!")
		fmt.Fprintln(sh.out, "Available commands:")
		fmt.Fprintln(sh.out, "  Catalog: list items, list print, list digital, filter, sort title, sort author, search, info")
		fmt.Fprintln(sh.out, "  Lending: checkout, return, my items, status")
		fmt.Fprintln(sh.out, "  System: exit")
		fmt.Fprintln(sh.out)
		fmt.Fprintln(sh.out, "Tips:")
		fmt.Fprintln(sh.out, "  • At 'checkout' and 'info' you can type a title or the number shown by the last listing")
	}

	for {
		sh.prompt("\n> ")
		if !sh.sc.Scan() {
			return sh.sc.Err()
		}
		cmd := strings.ToLower(strings.TrimSpace(sh.sc.Text()))

		switch cmd {
		case "":
		case "list items":
			sh.view = sh.sess.Catalog()
			sh.printItems(sh.view.Items())
		case "list print":
			sh.view = sh.sess.Catalog().FilterByKind(library.KindPhysical)
			sh.printItems(sh.view.Items())
		case "list digital":
			sh.view = sh.sess.Catalog().FilterByKind(library.KindDigital)
			sh.printItems(sh.view.Items())
		case "filter":
			sh.handleFilter()
		case "sort title":
			sh.view.SortByTitle()
			sh.printItems(sh.view.Items())
		case "sort author":
			sh.view.SortByAuthor()
			sh.printItems(sh.view.Items())
		case "search":
			sh.handleSearch()
		case "info":
			sh.handleInfo()
		case "checkout":
			sh.handleCheckout()
		case "return":
			sh.handleReturn()
		case "my items":
			sh.handleMyItems()
		case "status":
			sh.handleStatus()
		case "exit", "quit":
			fmt.Fprintln(sh.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(sh.out, "Unknown command. Type one of the available commands listed above.")
		}
	}
}

func (sh *shell) prompt(s string) {
	if sh.interactive {
		fmt.Fprint(sh.out, s)
	}
}

func (sh *shell) ask(label string) (string, bool) {
	sh.prompt(label)
	if !sh.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.sc.Text()), true
}

func (sh *shell) printItems(items []*library.Item) {
	if sh.jsonOut {
		b, err := library.MarshalIndent(library.NewItemViews(items))
		if err != nil {
			fmt.Fprintf(sh.out, "Error: %v\n", err)
			return
		}
		fmt.Fprintln(sh.out, string(b))
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(sh.out, "No items found.")
		return
	}
	fmt.Fprintf(sh.out, "%-4s %s\n", "#", library.PrettyHeader())
	fmt.Fprintln(sh.out, strings.Repeat("-", 130))
	for i, it := range items {
		fmt.Fprintf(sh.out, "%-4d %s\n", i+1, library.PrettyItem(it))
	}
}

// resolve turns "3" into the third item of the current view and anything
// else into a title lookup.
func (sh *shell) resolve(input string) (*library.Item, error) {
	if n, err := strconv.Atoi(input); err == nil {
		return sh.view.GetByIndex(n - 1)
	}
	return sh.sess.Find(input)
}

func (sh *shell) handleFilter() {
	kind, ok := sh.ask("Type (print/digital, Enter for any): ")
	if !ok {
		return
	}
	genre, ok := sh.ask("Genre (Enter for any): ")
	if !ok {
		return
	}
	author, ok := sh.ask("Author (Enter for any): ")
	if !ok {
		return
	}
	q, err := buildQuery(kind, genre, author)
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		return
	}
	sh.view = sh.sess.Query(q)
	sh.printItems(sh.view.Items())
}

func (sh *shell) handleSearch() {
	title, ok := sh.ask("Title: ")
	if !ok {
		return
	}
	it, err := sh.sess.Find(title)
	if err != nil {
		fmt.Fprintf(sh.out, "No item titled '%s'.\n", title)
		return
	}
	sh.view = library.NewCatalog(it)
	sh.printItems(sh.view.Items())
}

func (sh *shell) handleInfo() {
	in, ok := sh.ask("Title or #: ")
	if !ok {
		return
	}
	it, err := sh.resolve(in)
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		return
	}
	if sh.jsonOut {
		b, _ := library.MarshalIndent(library.NewItemView(it))
		fmt.Fprintln(sh.out, string(b))
		return
	}
	fmt.Fprintf(sh.out, "Title: %s\nAuthor: %s\nGenre: %s\nPage Count: %d\n", it.Title, it.Author, it.Genre, it.PageCount)
	switch it.Kind {
	case library.KindPhysical:
		fmt.Fprintf(sh.out, "Cover Type: %s\nAvailable: %t\n", it.Print.Cover, it.Available())
	case library.KindDigital:
		fmt.Fprintf(sh.out, "Format: %s\nCan download: %t\n", it.Digital.Format, it.CanDownload())
	}
}

func (sh *shell) handleCheckout() {
	in, ok := sh.ask("Title or #: ")
	if !ok {
		return
	}
	it, err := sh.resolve(in)
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		return
	}

	err = sh.sess.Checkout(it)
	switch {
	case err == nil && it.IsDigital():
		fmt.Fprintln(sh.out, "You have successfully downloaded the book!")
	case err == nil:
		fmt.Fprintln(sh.out, "You have successfully borrowed the book!")
	case errors.Is(err, library.ErrBorrowLimit):
		fmt.Fprintln(sh.out, "You have reached the limit of books you can borrow!")
		fmt.Fprintln(sh.out, "Please return a book to borrow new books")
	case errors.Is(err, library.ErrInvalidTransition) && it.IsDigital():
		fmt.Fprintln(sh.out, "This book can't be downloaded")
	case errors.Is(err, library.ErrInvalidTransition):
		fmt.Fprintln(sh.out, "This book is not available")
	default:
		fmt.Fprintf(sh.out, "Error checking out: %v\n", err)
	}
}

func (sh *shell) handleReturn() {
	borrowed := sh.sess.Ledger().Borrowed()
	if len(borrowed) == 0 {
		fmt.Fprintln(sh.out, "You have no borrowed books.")
		return
	}
	for i, it := range borrowed {
		fmt.Fprintf(sh.out, "%d. %s\n", i+1, it.FormattedTitle())
	}
	in, ok := sh.ask("Return which #: ")
	if !ok {
		return
	}
	n, err := strconv.Atoi(in)
	if err != nil {
		fmt.Fprintf(sh.out, "Invalid number: %s\n", in)
		return
	}
	it, err := sh.sess.Ledger().BorrowedItem(n - 1)
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
		return
	}
	if err := sh.sess.Return(it); err != nil {
		fmt.Fprintf(sh.out, "Error returning: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out, "'%s' returned. It is now available for checkout.\n", it.Title)
}

func (sh *shell) handleMyItems() {
	if sh.jsonOut {
		b, err := library.MarshalIndent(library.NewSessionView(sh.sess))
		if err != nil {
			fmt.Fprintf(sh.out, "Error: %v\n", err)
			return
		}
		fmt.Fprintln(sh.out, string(b))
		return
	}
	fmt.Fprintln(sh.out, "Borrowed:")
	sh.printItems(sh.sess.Ledger().Borrowed())
	fmt.Fprintln(sh.out, "\nDownloaded:")
	sh.printItems(sh.sess.Ledger().Downloaded())
}

func (sh *shell) handleStatus() {
	s := sh.sess.Summary()
	fmt.Fprintf(sh.out, "Borrowed Books: %d (limit %d)\n", s.BorrowCount, s.Limit)
	fmt.Fprintf(sh.out, "Downloaded Books: %d\n", s.Downloaded)
	if s.OverLimit {
		fmt.Fprintln(sh.out, "You have reached the borrowing limit.")
	}
}
