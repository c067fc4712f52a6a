package types

import (
	"errors"
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	specs := map[string]struct {
		src error
		exp ErrorKind
	}{
		"authorization": {src: ErrNotAuditor, exp: KindAuthorization},
		"validation":    {src: ErrZeroAmount, exp: KindValidation},
		"state":         {src: ErrAlreadyVoted, exp: KindState},
		"period":        {src: ErrFundPeriodYet, exp: KindPeriod},
		"resource":      {src: ErrPoolEmpty, exp: KindResource},
		"wrapped":       {src: sdkerrors.Wrap(ErrNotStaker, "voter"), exp: KindAuthorization},
		"wrapf":         {src: ErrInvalidGenesis.Wrapf("film %d", 1), exp: KindValidation},
		"sdk error":     {src: sdkerrors.ErrInsufficientFunds, exp: KindUnknown},
		"foreign error": {src: errors.New("other"), exp: KindUnknown},
		"nil":           {src: nil, exp: KindUnknown},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			got := KindOf(spec.src)
			assert.Equal(t, spec.exp, got, got.String())
		})
	}
}
