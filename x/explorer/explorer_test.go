package explorer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/characterhub/characterhub/client"
	"github.com/characterhub/characterhub/client/mock"
	"github.com/characterhub/characterhub/core"
)

const testDebounce = 20 * time.Millisecond

func waitIdle(t *testing.T, e *Explorer) Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snapshot := e.Snapshot()
		if !snapshot.Loading {
			return snapshot
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("explorer did not settle")
	return Snapshot{}
}

func newStubSource(ctrl *gomock.Controller) *mock_client.MockTokenSource {
	source := mock_client.NewMockTokenSource(ctrl)
	source.EXPECT().Token(gomock.Any()).Return("token", nil).AnyTimes()
	return source
}

func TestDebounceCollapsesRapidEdits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var mu sync.Mutex
	var queries []client.SearchQuery

	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().SearchCharacters(gomock.Any(), "token", gomock.Any()).DoAndReturn(
		func(ctx context.Context, token string, query client.SearchQuery) (core.CharactersResponse, error) {
			mu.Lock()
			queries = append(queries, query)
			mu.Unlock()
			return core.CharactersResponse{Total: 1, Page: query.Page, Limit: query.Limit}, nil
		},
	).AnyTimes()

	e := New(cli, newStubSource(ctrl), WithDebounce(testDebounce))
	defer e.Close()

	ctx := context.Background()
	e.SetQuery(ctx, "d")
	e.SetQuery(ctx, "dr")
	e.SetQuery(ctx, "dra")
	e.SetQuery(ctx, "dragon")

	time.Sleep(4 * testDebounce)
	waitIdle(t, e)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, queries, 1)
	assert.Equal(t, "dragon", queries[0].Name)
	assert.Equal(t, 1, queries[0].Page)
	assert.Equal(t, PageSize, queries[0].Limit)
}

func TestFilterChangeResetsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var mu sync.Mutex
	var queries []client.SearchQuery

	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().SearchCharacters(gomock.Any(), "token", gomock.Any()).DoAndReturn(
		func(ctx context.Context, token string, query client.SearchQuery) (core.CharactersResponse, error) {
			mu.Lock()
			queries = append(queries, query)
			mu.Unlock()
			return core.CharactersResponse{Total: 40, Page: query.Page, Limit: query.Limit}, nil
		},
	).AnyTimes()

	e := New(cli, newStubSource(ctrl), WithDebounce(testDebounce))
	defer e.Close()

	ctx := context.Background()
	e.Refresh(ctx)
	waitIdle(t, e)

	assert.True(t, e.NextPage(ctx))
	assert.True(t, e.NextPage(ctx))
	assert.Equal(t, 3, waitIdle(t, e).Page)

	e.SelectTag(ctx, core.CharacterTag{ID: "t1", Name: "villain"})
	time.Sleep(4 * testDebounce)
	snapshot := waitIdle(t, e)
	assert.Equal(t, 1, snapshot.Page)

	mu.Lock()
	defer mu.Unlock()
	last := queries[len(queries)-1]
	assert.Equal(t, 1, last.Page)
	assert.Equal(t, []string{"t1"}, last.TagIDs)
}

func TestSelectedTagsSentAsRepeatedParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var mu sync.Mutex
	var last client.SearchQuery

	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().SearchCharacters(gomock.Any(), "token", gomock.Any()).DoAndReturn(
		func(ctx context.Context, token string, query client.SearchQuery) (core.CharactersResponse, error) {
			mu.Lock()
			last = query
			mu.Unlock()
			return core.CharactersResponse{Total: 2}, nil
		},
	).AnyTimes()

	e := New(cli, newStubSource(ctrl), WithDebounce(testDebounce))
	defer e.Close()

	ctx := context.Background()
	e.SelectTag(ctx, core.CharacterTag{ID: "t1", Name: "villain"})
	e.SelectTag(ctx, core.CharacterTag{ID: "t2", Name: "medieval"})
	time.Sleep(4 * testDebounce)
	waitIdle(t, e)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"t1", "t2"}, last.TagIDs)

	// repeated tag_ids params on the wire, never a joined list
	values := last.Values()
	assert.Equal(t, []string{"t1", "t2"}, values["tag_ids"])
}

func TestStaleResponseDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slow := make(chan struct{})

	cli := mock_client.NewMockClient(ctrl)
	first := cli.EXPECT().SearchCharacters(gomock.Any(), "token", gomock.Any()).DoAndReturn(
		func(ctx context.Context, token string, query client.SearchQuery) (core.CharactersResponse, error) {
			<-slow
			return core.CharactersResponse{
				Characters: []core.Character{{ID: "stale", Name: "Old"}},
				Total:      1,
			}, nil
		},
	)
	cli.EXPECT().SearchCharacters(gomock.Any(), "token", gomock.Any()).DoAndReturn(
		func(ctx context.Context, token string, query client.SearchQuery) (core.CharactersResponse, error) {
			return core.CharactersResponse{
				Characters: []core.Character{{ID: "fresh", Name: "New"}},
				Total:      1,
			}, nil
		},
	).After(first)

	e := New(cli, newStubSource(ctrl), WithDebounce(testDebounce))
	defer e.Close()

	ctx := context.Background()
	e.Refresh(ctx)
	time.Sleep(5 * time.Millisecond)
	e.Refresh(ctx)
	waitIdle(t, e)

	// let the first request resolve after the second already landed
	close(slow)
	time.Sleep(50 * time.Millisecond)

	snapshot := e.Snapshot()
	assert.Len(t, snapshot.Characters, 1)
	assert.Equal(t, "fresh", snapshot.Characters[0].ID)
}

func TestPaginationBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().SearchCharacters(gomock.Any(), "token", gomock.Any()).DoAndReturn(
		func(ctx context.Context, token string, query client.SearchQuery) (core.CharactersResponse, error) {
			return core.CharactersResponse{Total: 17, Page: query.Page, Limit: query.Limit}, nil
		},
	).AnyTimes()

	e := New(cli, newStubSource(ctrl), WithDebounce(testDebounce))
	defer e.Close()

	ctx := context.Background()

	assert.False(t, e.PrevPage(ctx), "no previous page before the first fetch")

	e.Refresh(ctx)
	snapshot := waitIdle(t, e)
	assert.Equal(t, 3, snapshot.TotalPages)
	assert.True(t, snapshot.HasNext())
	assert.False(t, snapshot.HasPrev())

	assert.True(t, e.NextPage(ctx))
	assert.True(t, e.NextPage(ctx))
	snapshot = waitIdle(t, e)
	assert.Equal(t, 3, snapshot.Page)
	assert.False(t, snapshot.HasNext())

	assert.False(t, e.NextPage(ctx), "cannot advance past the last page")
	assert.True(t, e.PrevPage(ctx))
	assert.Equal(t, 2, waitIdle(t, e).Page)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, totalPages(0))
	assert.Equal(t, 1, totalPages(1))
	assert.Equal(t, 1, totalPages(8))
	assert.Equal(t, 2, totalPages(9))
	assert.Equal(t, 3, totalPages(17))
}

func TestFetchErrorSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().SearchCharacters(gomock.Any(), "token", gomock.Any()).Return(
		core.CharactersResponse{}, core.NewErrorUpstream(502, "bad gateway"),
	)

	e := New(cli, newStubSource(ctrl), WithDebounce(testDebounce))
	defer e.Close()

	e.Refresh(context.Background())
	snapshot := waitIdle(t, e)
	assert.Equal(t, "Failed to fetch characters", snapshot.Err)

	// a later successful fetch clears the error
	cli.EXPECT().SearchCharacters(gomock.Any(), "token", gomock.Any()).Return(
		core.CharactersResponse{Total: 1}, nil,
	)
	e.Refresh(context.Background())
	snapshot = waitIdle(t, e)
	assert.Empty(t, snapshot.Err)
}

func TestObserverNotified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli := mock_client.NewMockClient(ctrl)
	cli.EXPECT().SearchCharacters(gomock.Any(), "token", gomock.Any()).Return(
		core.CharactersResponse{Total: 1}, nil,
	).AnyTimes()

	notified := make(chan Snapshot, 8)
	e := New(cli, newStubSource(ctrl), WithDebounce(testDebounce), WithObserver(func(s Snapshot) {
		select {
		case notified <- s:
		default:
		}
	}))
	defer e.Close()

	e.Refresh(context.Background())

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("observer was not notified")
	}
}
