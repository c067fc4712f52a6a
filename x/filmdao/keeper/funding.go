package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cinedao/cinedao/x/filmdao/types"
)

// GetDepositAsset returns the registered asset of the denom
func (k Keeper) GetDepositAsset(ctx sdk.Context, denom string) (types.DepositAsset, bool) {
	var a types.DepositAsset
	found := k.load(ctx, types.GetDepositAssetKey(denom), &a)
	return a, found
}

func (k Keeper) setDepositAsset(ctx sdk.Context, a types.DepositAsset) {
	k.save(ctx, types.GetDepositAssetKey(a.Denom), &a)
}

// IterateDepositAssets calls cb for all registered assets until cb returns true
func (k Keeper) IterateDepositAssets(ctx sdk.Context, cb func(types.DepositAsset) bool) {
	iterate(ctx, k.storeKey, types.DepositAssetPrefix, func(_, value []byte) bool {
		var a types.DepositAsset
		k.cdc.MustUnmarshal(value, &a)
		return cb(a)
	})
}

func (k Keeper) requireDepositAsset(ctx sdk.Context, denom string) (types.DepositAsset, error) {
	a, found := k.GetDepositAsset(ctx, denom)
	if !found {
		return a, types.ErrAssetNotAllowed.Wrap(denom)
	}
	return a, nil
}

// DepositToFilm records a funding deposit and moves the funds into the module. The
// amount is in units of the asset and stored normalized to 18 decimals.
func (k Keeper) DepositToFilm(ctx sdk.Context, depositor sdk.AccAddress, filmID uint64, amount sdk.Int, denom string) (sdk.Int, error) {
	var normalized sdk.Int
	err := k.atomic(ctx, "deposit_to_film", func(ctx sdk.Context) error {
		if err := requirePositive(amount); err != nil {
			return err
		}
		asset, err := k.requireDepositAsset(ctx, denom)
		if err != nil {
			return err
		}
		f, err := k.GetFilm(ctx, filmID)
		if err != nil {
			return err
		}
		if f.Status != types.FilmStatusApprovedFunding {
			return types.ErrInvalidFilmStatus.Wrapf("film %d is %s", f.ID, f.Status)
		}
		now := ctx.BlockTime()
		if now.Before(f.FundPeriodStart) {
			return types.ErrFundPeriodYet
		}
		if !f.InFundPeriod(now) {
			return types.ErrFundPeriodElapsed.Wrapf("ended %s", f.FundPeriodEnd())
		}

		normalized = asset.Normalize(amount)
		coin := sdk.NewCoin(denom, amount)
		d := types.Deposit{
			FilmID:           f.ID,
			Seq:              k.autoIncrementID(ctx, types.GetDepositSequenceName(f.ID)),
			Depositor:        depositor,
			Denom:            denom,
			Amount:           amount,
			NormalizedAmount: normalized,
			Time:             now,
		}
		k.save(ctx, types.GetDepositKey(d.FilmID, d.Seq), &d)

		ud := k.GetUserDeposit(ctx, f.ID, depositor)
		ud.Total = ud.Total.Add(normalized)
		ud.Assets = ud.Assets.Add(coin)
		k.setUserDeposit(ctx, ud)

		f.DepositedTotal = f.DepositedTotal.Add(normalized)
		k.setFilm(ctx, f)
		capReached := f.RaiseReached()
		if capReached {
			ModuleLogger(ctx).Info("raise amount reached", "film", f.ID, "deposited", f.DepositedTotal.String())
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeDepositRecorded,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyFilmID, strconv.FormatUint(f.ID, 10)),
			sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyNormalized, normalized.String()),
			sdk.NewAttribute(types.AttributeKeyCapReached, strconv.FormatBool(capReached)),
		))
		return k.collect(ctx, depositor, coin)
	})
	if err != nil {
		return sdk.ZeroInt(), err
	}
	return normalized, nil
}

// GetUserDeposit returns the cumulative funding of the depositor. It is empty when the
// address never deposited.
func (k Keeper) GetUserDeposit(ctx sdk.Context, filmID uint64, depositor sdk.AccAddress) types.UserDeposit {
	var ud types.UserDeposit
	if !k.load(ctx, types.GetUserDepositKey(filmID, depositor), &ud) {
		return types.UserDeposit{FilmID: filmID, Depositor: depositor, Total: sdk.ZeroInt(), Assets: sdk.NewCoins()}
	}
	return ud
}

func (k Keeper) setUserDeposit(ctx sdk.Context, ud types.UserDeposit) {
	k.save(ctx, types.GetUserDepositKey(ud.FilmID, ud.Depositor), &ud)
}

// IterateUserDeposits calls cb for all depositors of a film until cb returns true
func (k Keeper) IterateUserDeposits(ctx sdk.Context, filmID uint64, cb func(types.UserDeposit) bool) {
	iterate(ctx, k.storeKey, types.GetUserDepositPrefix(filmID), func(_, value []byte) bool {
		var ud types.UserDeposit
		k.cdc.MustUnmarshal(value, &ud)
		return cb(ud)
	})
}

// GetDeposits returns the deposit ledger of a film in insertion order
func (k Keeper) GetDeposits(ctx sdk.Context, filmID uint64) []types.Deposit {
	var r []types.Deposit
	iterate(ctx, k.storeKey, types.GetDepositPrefix(filmID), func(_, value []byte) bool {
		var d types.Deposit
		k.cdc.MustUnmarshal(value, &d)
		r = append(r, d)
		return false
	})
	return r
}

// GetFilmFundedAmount returns the normalized total deposited to a film
func (k Keeper) GetFilmFundedAmount(ctx sdk.Context, filmID uint64) (sdk.Int, error) {
	f, err := k.GetFilm(ctx, filmID)
	if err != nil {
		return sdk.ZeroInt(), err
	}
	return f.DepositedTotal, nil
}

// WithdrawFunding refunds a depositor after the fund period of a film that missed its
// raise amount.
func (k Keeper) WithdrawFunding(ctx sdk.Context, depositor sdk.AccAddress, filmID uint64) (sdk.Coins, error) {
	var refund sdk.Coins
	err := k.atomic(ctx, "withdraw_funding", func(ctx sdk.Context) error {
		f, err := k.requireFundingClosed(ctx, filmID)
		if err != nil {
			return err
		}
		if f.RaiseReached() {
			return types.ErrRaiseReached
		}
		ud := k.GetUserDeposit(ctx, f.ID, depositor)
		if ud.Refunded || ud.Assets.IsZero() {
			return types.ErrNothingToRefund
		}
		ud.Refunded = true
		k.setUserDeposit(ctx, ud)
		refund = ud.Assets

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeFundingRefunded,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyFilmID, strconv.FormatUint(f.ID, 10)),
			sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, refund.String()),
		))
		return k.payout(ctx, depositor, refund)
	})
	if err != nil {
		return nil, err
	}
	return refund, nil
}

// FundProcess pays the funds raised by a successful film to its payees by their share
// percents. Rounding dust goes to the studio.
func (k Keeper) FundProcess(ctx sdk.Context, studio sdk.AccAddress, filmID uint64) (sdk.Coins, error) {
	var raised sdk.Coins
	err := k.atomic(ctx, "fund_process", func(ctx sdk.Context) error {
		f, err := k.requireFundingClosed(ctx, filmID)
		if err != nil {
			return err
		}
		if !f.Studio.Equals(studio) {
			return types.ErrNotStudio
		}
		if !f.RaiseReached() {
			return types.ErrRaiseNotReached.Wrapf("deposited %s of %s", f.DepositedTotal, f.Terms.RaiseAmount)
		}
		if f.Processed {
			return types.ErrAlreadyProcessed
		}
		raised = sdk.NewCoins()
		k.IterateUserDeposits(ctx, f.ID, func(ud types.UserDeposit) bool {
			raised = raised.Add(ud.Assets...)
			return false
		})
		f.Processed = true
		k.setFilm(ctx, f)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeFundingProcessed,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyFilmID, strconv.FormatUint(f.ID, 10)),
			sdk.NewAttribute(types.AttributeKeyAmount, raised.String()),
		))
		remaining := raised
		for i, payee := range f.Terms.Payees {
			share := sharesOf(raised, f.Terms.SharePercents[i])
			remaining = remaining.Sub(share)
			if err := k.payout(ctx, payee, share); err != nil {
				return err
			}
		}
		return k.payout(ctx, f.Studio, remaining)
	})
	if err != nil {
		return nil, err
	}
	return raised, nil
}

func sharesOf(coins sdk.Coins, p types.Percent) sdk.Coins {
	r := sdk.NewCoins()
	for _, c := range coins {
		r = r.Add(sdk.NewCoin(c.Denom, p.MulInt(c.Amount)))
	}
	return r
}

// requireFundingClosed returns a funding film whose fund period is over
func (k Keeper) requireFundingClosed(ctx sdk.Context, filmID uint64) (types.Film, error) {
	f, err := k.GetFilm(ctx, filmID)
	if err != nil {
		return f, err
	}
	if f.Status != types.FilmStatusApprovedFunding {
		return f, types.ErrInvalidFilmStatus.Wrapf("film %d is %s", f.ID, f.Status)
	}
	if end := f.FundPeriodEnd(); ctx.BlockTime().Before(end) {
		return f, types.ErrFundPeriodYet.Wrapf("until %s", end)
	}
	return f, nil
}
