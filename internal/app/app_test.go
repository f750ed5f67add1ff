package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glabrego/cinemas-cli/internal/rapidmock"
)

type fakeClient struct {
	movies  []rapidmock.Movie
	details map[int64]rapidmock.MovieDetails
	list    rapidmock.MyList

	listErr   error
	movieErr  map[int64]error
	myListErr error
	addErr    error

	mu    sync.Mutex
	added []rapidmock.Status
}

func (f *fakeClient) ListMovies(context.Context) ([]rapidmock.Movie, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.movies, nil
}

func (f *fakeClient) GetMovie(_ context.Context, id int64) (rapidmock.MovieDetails, error) {
	if err := f.movieErr[id]; err != nil {
		return rapidmock.MovieDetails{}, err
	}
	details, ok := f.details[id]
	if !ok {
		return rapidmock.MovieDetails{}, rapidmock.ErrNotFound
	}
	return details, nil
}

func (f *fakeClient) GetMyList(context.Context) (rapidmock.MyList, error) {
	if f.myListErr != nil {
		return rapidmock.MyList{}, f.myListErr
	}
	return f.list, nil
}

func (f *fakeClient) AddToList(_ context.Context, _ int64, status rapidmock.Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, status)
	return f.addErr
}

func details(id int64, title string) rapidmock.MovieDetails {
	return rapidmock.MovieDetails{Movie: rapidmock.Movie{ID: id, Title: title}}
}

func TestService_LoadCatalog(t *testing.T) {
	client := &fakeClient{movies: []rapidmock.Movie{{ID: 1, Title: "Heat"}}}
	svc := NewService(client, zerolog.Nop())

	movies, err := svc.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, client.movies, movies)
}

func TestService_LoadCatalog_WrapsError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&fakeClient{listErr: boom}, zerolog.Nop())

	_, err := svc.LoadCatalog(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fetch catalog")
}

func TestService_LoadMyList_NormalizesNilBuckets(t *testing.T) {
	svc := NewService(&fakeClient{}, zerolog.Nop())

	list, err := svc.LoadMyList(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list.Watched)
	assert.NotNil(t, list.ToWatch)
}

func TestService_LoadMyList_Error(t *testing.T) {
	svc := NewService(&fakeClient{myListErr: &rapidmock.APIError{Op: "get my list", StatusCode: 503}}, zerolog.Nop())

	_, err := svc.LoadMyList(context.Background())
	var apiErr *rapidmock.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.StatusCode)
}

func TestService_LoadMovie_NotFoundStaysDetectable(t *testing.T) {
	svc := NewService(&fakeClient{}, zerolog.Nop())

	_, err := svc.LoadMovie(context.Background(), 404)
	require.ErrorIs(t, err, rapidmock.ErrNotFound)
}

func TestService_LoadMovies_KeepsArgumentOrder(t *testing.T) {
	client := &fakeClient{details: map[int64]rapidmock.MovieDetails{
		1: details(1, "Heat"),
		2: details(2, "Ronin"),
		3: details(3, "Thief"),
		4: details(4, "Collateral"),
		5: details(5, "Manhunter"),
	}}
	svc := NewService(client, zerolog.Nop())

	got, err := svc.LoadMovies(context.Background(), []int64{5, 3, 1, 4, 2})
	require.NoError(t, err)
	require.Len(t, got, 5)
	want := []string{"Manhunter", "Thief", "Heat", "Collateral", "Ronin"}
	for i, m := range got {
		assert.Equal(t, want[i], m.Title)
	}
}

func TestService_LoadMovies_FailsOnAnyError(t *testing.T) {
	boom := errors.New("boom")
	client := &fakeClient{
		details:  map[int64]rapidmock.MovieDetails{1: details(1, "Heat")},
		movieErr: map[int64]error{2: boom},
	}
	svc := NewService(client, zerolog.Nop())

	_, err := svc.LoadMovies(context.Background(), []int64{1, 2})
	require.ErrorIs(t, err, boom)
}

func TestService_AddToList(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, zerolog.Nop())

	require.NoError(t, svc.AddToList(context.Background(), 1, rapidmock.StatusWatched))
	assert.Equal(t, []rapidmock.Status{rapidmock.StatusWatched}, client.added)
}

func TestService_AddToList_InvalidStatusSkipsClient(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, zerolog.Nop())

	err := svc.AddToList(context.Background(), 1, rapidmock.Status("Loved"))
	require.ErrorIs(t, err, rapidmock.ErrInvalidStatus)
	assert.Empty(t, client.added)
}

func TestService_AddToList_WrapsClientError(t *testing.T) {
	apiErr := &rapidmock.APIError{Op: "add to list", StatusCode: 500}
	svc := NewService(&fakeClient{addErr: apiErr}, zerolog.Nop())

	err := svc.AddToList(context.Background(), 9, rapidmock.StatusToWatch)
	require.Error(t, err)
	assert.Equal(t, "add movie 9 to list: add to list failed with status 500", err.Error())
}
