package app

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	filmdaokeeper "github.com/cinedao/cinedao/x/filmdao/keeper"
)

// TestSupport exposes the app keepers to integration tests
type TestSupport struct {
	t   *testing.T
	app *CinedaoApp
}

func NewTestSupport(t *testing.T, app *CinedaoApp) *TestSupport {
	return &TestSupport{t: t, app: app}
}

func (s TestSupport) AppCodec() codec.Codec {
	return s.app.appCodec
}

func (s TestSupport) BankKeeper() bankkeeper.Keeper {
	return s.app.bankKeeper
}

func (s TestSupport) FilmDAOKeeper() filmdaokeeper.Keeper {
	return s.app.filmDAOKeeper
}
