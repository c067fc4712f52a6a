package testing

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cosmos/cosmos-sdk/client/rpc"
	"github.com/cosmos/cosmos-sdk/codec"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/cinedao/cinedao/app"
)

// CinedaoCli wraps the command line interface
type CinedaoCli struct {
	t             *testing.T
	nodeAddress   string
	chainID       string
	homeDir       string
	Debug         bool
	amino         *codec.LegacyAmino
	assertErrorFn RunErrorAssert
}

func NewCinedaoCli(t *testing.T, sut *SystemUnderTest, verbose bool) *CinedaoCli {
	return &CinedaoCli{
		t:             t,
		nodeAddress:   sut.rpcAddr,
		chainID:       sut.chainID,
		homeDir:       filepath.Join(workDir, sut.nodeHome()),
		Debug:         verbose,
		amino:         app.MakeEncodingConfig().Amino,
		assertErrorFn: require.NoError,
	}
}

// RunErrorAssert is custom type that is satisfies by testify matchers as well
type RunErrorAssert func(t require.TestingT, err error, msgAndArgs ...interface{})

// WithRunErrorMatcher assert function to ensure run command error value
func (c CinedaoCli) WithRunErrorMatcher(f RunErrorAssert) CinedaoCli {
	c.assertErrorFn = f
	return c
}

func (c CinedaoCli) CustomCommand(args ...string) string {
	args = c.withTXFlags(args...)
	return c.run(args)
}

func (c CinedaoCli) Keys(args ...string) string {
	args = c.withKeyringFlags(args...)
	return c.run(args)
}

func (c CinedaoCli) CustomQuery(args ...string) string {
	args = c.withQueryFlags(args...)
	return c.run(args)
}

// QueryFilmDAO runs a film dao query. Returns the amino json response
func (c CinedaoCli) QueryFilmDAO(args ...string) string {
	return c.CustomQuery(append([]string{"q", "filmdao"}, args...)...)
}

func (c CinedaoCli) run(args []string) string {
	if c.Debug {
		c.t.Logf("+++ running `%s %s`", binaryName, strings.Join(args, " "))
	}
	gotOut, gotErr := func() (out []byte, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("recovered from panic: %v", r)
			}
		}()
		cmd := exec.Command(locateExecutable(binaryName), args...) //nolint:gosec
		cmd.Dir = workDir
		return cmd.CombinedOutput()
	}()
	c.assertErrorFn(c.t, gotErr, string(gotOut))
	return string(gotOut)
}

func (c CinedaoCli) withQueryFlags(args ...string) []string {
	args = append(args, "--output", "json")
	return c.withChainFlags(args...)
}

func (c CinedaoCli) withTXFlags(args ...string) []string {
	args = append(args,
		"--broadcast-mode", "block",
		"--output", "json",
		"--yes",
	)
	args = c.withKeyringFlags(args...)
	return c.withChainFlags(args...)
}

func (c CinedaoCli) withKeyringFlags(args ...string) []string {
	r := append(args,
		"--home", c.homeDir,
		"--keyring-backend", "test",
	)
	for _, v := range args {
		if v == "-a" || v == "--address" { // show address only
			return r
		}
	}
	return append(r, "--output", "json")
}

func (c CinedaoCli) withChainFlags(args ...string) []string {
	return append(args,
		"--node", c.nodeAddress,
		"--chain-id", c.chainID,
	)
}

// AddKey add key to default keyring. Returns address
func (c CinedaoCli) AddKey(name string) string {
	cmd := c.withKeyringFlags("keys", "add", name, "--no-backup")
	out := c.run(cmd)
	addr := gjson.Get(lastJSONLine(out), "address").String()
	require.NotEmpty(c.t, addr, "got %q", out)
	return addr
}

// GetKeyAddr returns address
func (c CinedaoCli) GetKeyAddr(name string) string {
	cmd := c.withKeyringFlags("keys", "show", name, "-a")
	out := c.run(cmd)
	addr := strings.Trim(out, "\n")
	require.NotEmpty(c.t, addr, "got %q", out)
	return addr
}

// FundAddress sends the token amount from node0 to the destination address
func (c CinedaoCli) FundAddress(destAddr, amount string) string {
	require.NotEmpty(c.t, destAddr)
	require.NotEmpty(c.t, amount)
	cmd := []string{"tx", "bank", "send", node0, destAddr, amount}
	rsp := c.run(c.withTXFlags(cmd...))
	RequireTxSuccess(c.t, rsp)
	return rsp
}

// QueryBalance returns balance amount for given denom.
// 0 when not found
func (c CinedaoCli) QueryBalance(addr, denom string) int64 {
	raw := c.CustomQuery("q", "bank", "balances", addr, "--denom="+denom)
	require.Contains(c.t, raw, "amount", raw)
	return gjson.Get(raw, "amount").Int()
}

func (c CinedaoCli) GetTendermintValidatorSet() rpc.ResultValidatorsOutput {
	args := []string{"q", "tendermint-validator-set"}
	got := c.run(c.withQueryFlags(args...))

	var res rpc.ResultValidatorsOutput
	require.NoError(c.t, c.amino.UnmarshalJSON([]byte(got), &res), got)
	return res
}

// IsInTendermintValset returns true when the given pub key is in the current active tendermint validator set
func (c CinedaoCli) IsInTendermintValset(valPubKey cryptotypes.PubKey) (rpc.ResultValidatorsOutput, bool) {
	valResult := c.GetTendermintValidatorSet()
	for _, v := range valResult.Validators {
		if v.PubKey.Equals(valPubKey) {
			return valResult, true
		}
	}
	return valResult, false
}

// RequireTxSuccess require the received response to contain the success code
func RequireTxSuccess(t *testing.T, got string) {
	t.Helper()
	code := gjson.Get(got, "code")
	details := gjson.Get(got, "raw_log").String()
	if len(details) == 0 {
		details = got
	}
	require.Equal(t, int64(0), code.Int(), "non success tx code : %s", details)
}

// ErrQueryFailedMatcher requires a failed query with the given message in the output
func ErrQueryFailedMatcher(expMsg string) RunErrorAssert {
	return func(t require.TestingT, err error, args ...interface{}) {
		expErrWithMsg(t, err, args, expMsg)
	}
}

func expErrWithMsg(t require.TestingT, err error, args []interface{}, expMsg string) {
	require.Error(t, err, args)
	var found bool
	for _, v := range args {
		if strings.Contains(fmt.Sprintf("%s", v), expMsg) {
			found = true
			break
		}
	}
	require.True(t, found, "expected %q but got: %s", expMsg, args)
}
