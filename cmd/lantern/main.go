package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/chanderbhanswami/lantern/internal/app"
	"github.com/chanderbhanswami/lantern/internal/deck"
	"github.com/chanderbhanswami/lantern/internal/remote"
)

const remoteTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	deckPath := flag.String("deck", "", "deck manifest path (may also be given as the first argument)")
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	initDeck := flag.Bool("init", false, "write a starter deck to the deck path and exit")
	remoteAddr := flag.String("remote", "", "address of a running presenter; sends a command instead of presenting")
	flag.Parse()

	args := flag.Args()

	if *remoteAddr != "" {
		return runRemote(*remoteAddr, args)
	}

	path := *deckPath
	if path == "" && len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "lantern: no deck given; pass -deck or a manifest path")
		return 2
	}

	if *initDeck {
		if err := writeStarterDeck(path); err != nil {
			fmt.Fprintf(os.Stderr, "lantern: %v\n", err)
			return 1
		}
		fmt.Printf("wrote starter deck to %s\n", path)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		DeckPath:   path,
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "lantern: %v\n", err)
		return 1
	}
	return 0
}

func writeStarterDeck(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing %s", path)
	}
	return deck.Write(deck.Sample(), path)
}

// runRemote drives a running presenter over its control API.
func runRemote(addr string, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "lantern: -remote needs a command: state, deck, next, previous, toggle, goto N")
		return 2
	}

	client, err := remote.NewClient(addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lantern: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
	defer cancel()

	if args[0] == "deck" {
		d, err := client.Deck(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lantern: %v\n", err)
			return 1
		}
		printDeck(d)
		return 0
	}

	st, err := dispatchRemote(ctx, client, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lantern: %v\n", err)
		return 1
	}
	printState(st)
	return 0
}

func dispatchRemote(ctx context.Context, client *remote.Client, args []string) (*remote.StateResponse, error) {
	switch args[0] {
	case "state":
		return client.State(ctx)
	case "next":
		return client.Next(ctx)
	case "previous", "prev":
		return client.Previous(ctx)
	case "toggle", "play", "pause":
		return client.ToggleAutoplay(ctx)
	case "goto":
		if len(args) < 2 {
			return nil, fmt.Errorf("goto needs a 1-based slide number")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("goto: %q is not a slide number", args[1])
		}
		return client.GoTo(ctx, n-1)
	default:
		return nil, fmt.Errorf("unknown command %q", args[0])
	}
}

func printState(st *remote.StateResponse) {
	badge := "paused"
	if st.IsPlaying {
		badge = "playing"
	}
	if st.IsSuspended {
		badge += " (held)"
	}
	fmt.Printf("slide %d/%d  %s", st.Index+1, st.SlideCount, badge)
	if st.Title != "" {
		fmt.Printf("  %s", st.Title)
	}
	fmt.Println()
}

func printDeck(d *remote.DeckResponse) {
	fmt.Println(d.Title)
	if d.Author != "" {
		fmt.Println(d.Author)
	}
	for i, s := range d.Slides {
		marker := " "
		if s.HasImage {
			marker = "*"
		}
		fmt.Printf("%3d %s %s\n", i+1, marker, s.Title)
	}
}
