package actions

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/cinemas-cli/internal/rapidmock"
)

// DefaultTimeout bounds a single command when the caller passes no timeout.
const DefaultTimeout = 10 * time.Second

type Service interface {
	LoadCatalog(ctx context.Context) ([]rapidmock.Movie, error)
	LoadMyList(ctx context.Context) (rapidmock.MyList, error)
	LoadMovie(ctx context.Context, id int64) (rapidmock.MovieDetails, error)
	AddToList(ctx context.Context, id int64, status rapidmock.Status) error
}

// Every message carries the generation of the screen mount that issued the
// command. Receivers drop messages whose generation no longer matches.

type CatalogLoadedMsg struct {
	Gen      uint64
	Movies   []rapidmock.Movie
	Duration time.Duration
}

type CatalogErrorMsg struct {
	Gen uint64
	Err error
}

type MyListLoadedMsg struct {
	Gen  uint64
	List rapidmock.MyList
}

type MyListErrorMsg struct {
	Gen uint64
	Err error
}

type MovieLoadedMsg struct {
	Gen   uint64
	Movie rapidmock.MovieDetails
}

type MovieNotFoundMsg struct {
	Gen uint64
	ID  int64
}

type MovieErrorMsg struct {
	Gen uint64
	Err error
}

type AddToListSuccessMsg struct {
	Gen    uint64
	ID     int64
	Status rapidmock.Status
}

type AddToListErrorMsg struct {
	Gen    uint64
	ID     int64
	Status rapidmock.Status
	Err    error
}

type OpenURLSuccessMsg struct {
	Gen    uint64
	Status string
	Opened bool
}

type OpenURLErrorMsg struct {
	Gen uint64
	Err error
}

func withTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(parent, timeout)
}

func LoadCatalogCmd(parent context.Context, service Service, gen uint64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(parent, timeout)
		defer cancel()
		start := time.Now()

		movies, err := service.LoadCatalog(ctx)
		if err != nil {
			return CatalogErrorMsg{Gen: gen, Err: err}
		}
		return CatalogLoadedMsg{Gen: gen, Movies: movies, Duration: time.Since(start)}
	}
}

func LoadMyListCmd(parent context.Context, service Service, gen uint64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(parent, timeout)
		defer cancel()

		list, err := service.LoadMyList(ctx)
		if err != nil {
			return MyListErrorMsg{Gen: gen, Err: err}
		}
		return MyListLoadedMsg{Gen: gen, List: list}
	}
}

func LoadMovieCmd(parent context.Context, service Service, gen uint64, id int64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(parent, timeout)
		defer cancel()

		movie, err := service.LoadMovie(ctx, id)
		switch {
		case errors.Is(err, rapidmock.ErrNotFound):
			return MovieNotFoundMsg{Gen: gen, ID: id}
		case err != nil:
			return MovieErrorMsg{Gen: gen, Err: err}
		}
		return MovieLoadedMsg{Gen: gen, Movie: movie}
	}
}

func AddToListCmd(parent context.Context, service Service, gen uint64, id int64, status rapidmock.Status, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(parent, timeout)
		defer cancel()

		if err := service.AddToList(ctx, id, status); err != nil {
			return AddToListErrorMsg{Gen: gen, ID: id, Status: status, Err: err}
		}
		return AddToListSuccessMsg{Gen: gen, ID: id, Status: status}
	}
}

func OpenURLCmd(gen uint64, url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Gen: gen, Status: "Opened poster in browser", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Gen: gen, Status: "Could not open browser, poster URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Gen: gen, Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(gen uint64, url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Gen: gen, Status: "Poster URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Gen: gen, Err: fmt.Errorf("could not copy URL to clipboard")}
	}
}
