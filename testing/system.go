package testing

import (
	"bufio"
	"container/ring"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	client "github.com/tendermint/tendermint/rpc/client/http"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	"github.com/tendermint/tendermint/types"
	"github.com/tidwall/gjson"
)

const (
	binaryName = "cinedao"
	// node0 is the key name of the genesis account that is also the dao auditor
	node0         = "node0"
	stakingDenom  = "stake"
	depositDenom  = "uusdc"
	genesisAmount = "1000000000000"
)

var workDir string

// SystemUnderTest is a single node cinedao chain run from the installed binary
type SystemUnderTest struct {
	blockListener EventListener
	currentHeight *int64
	chainID       string
	outputDir     string
	blockTime     time.Duration
	rpcAddr       string
	minGasPrice   string
	auditorAddr   string
	cleanupFn     []CleanupFn
	outBuff       *ring.Ring
	errBuff       *ring.Ring
	logger        log.Logger
	verbose       bool
}

func NewSystemUnderTest(verbose bool, blockTime time.Duration) *SystemUnderTest {
	return &SystemUnderTest{
		currentHeight: new(int64),
		chainID:       "testing",
		outputDir:     "./testnet",
		blockTime:     blockTime,
		rpcAddr:       "tcp://localhost:26657",
		minGasPrice:   "0" + stakingDenom,
		outBuff:       ring.New(100),
		errBuff:       ring.New(100),
		logger:        log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "system_test"),
		verbose:       verbose,
	}
}

// SetupChain creates a fresh node home with node0 as funded auditor and the node
// key as the only genesis validator
func (s *SystemUnderTest) SetupChain() {
	s.Log("Setup chain")
	if err := os.RemoveAll(filepath.Join(workDir, s.outputDir)); err != nil {
		panic(fmt.Sprintf("unexpected error :%#+v", err))
	}
	home := s.nodeHome()
	s.mustExec("init", node0, "--chain-id="+s.chainID, "--home", home)
	out := s.mustExec("keys", "add", node0, "--keyring-backend=test", "--output=json", "--home", home)
	s.auditorAddr = gjson.Get(lastJSONLine(out), "address").String()
	if s.auditorAddr == "" {
		panic(fmt.Sprintf("no address in key output: %s", out))
	}
	coins := genesisAmount + depositDenom + "," + genesisAmount + stakingDenom
	s.mustExec("add-genesis-account", s.auditorAddr, coins, "--keyring-backend=test", "--home", home)
	s.mustExec("set-genesis-auditor", s.auditorAddr, "--home", home)
	s.mustExec("add-genesis-deposit-asset", depositDenom, "6", "--home", home)
	s.mustExec("add-genesis-validator", "--home", home)
	s.mustExec("validate-genesis", "--home", home)

	// backup genesis
	src := filepath.Join(workDir, home, "config", "genesis.json")
	dest := filepath.Join(workDir, home, "config", "genesis.json.orig")
	if err := copyFile(src, dest); err != nil {
		panic(fmt.Sprintf("copy failed :%#+v", err))
	}
}

func (s *SystemUnderTest) mustExec(args ...string) string {
	s.Logf("Execute `%s %s`\n", binaryName, strings.Join(args, " "))
	cmd := exec.Command(locateExecutable(binaryName), args...) //nolint:gosec
	cmd.Dir = workDir
	out, err := cmd.CombinedOutput()
	if err != nil {
		panic(fmt.Sprintf("unexpected error :%#+v, output: %s", err, string(out)))
	}
	s.Log(string(out))
	return string(out)
}

// StartChain starts the node and subscribes to new blocks
func (s *SystemUnderTest) StartChain(t *testing.T) {
	s.Log("Start chain")
	args := []string{"start", "--trace", "--log_level=info", "--minimum-gas-prices=" + s.minGasPrice, "--home", s.nodeHome()}
	s.Logf("Execute `%s %s`\n", binaryName, strings.Join(args, " "))
	cmd := exec.Command(locateExecutable(binaryName), args...) //nolint:gosec
	cmd.Dir = workDir
	s.watchLogs(cmd)
	require.NoError(t, cmd.Start())

	s.awaitChainUp(t)

	t.Log("Start new block listener")
	s.blockListener = NewEventListener(t, s.rpcAddr)
	s.cleanupFn = append(s.cleanupFn,
		s.blockListener.Subscribe("tm.event='NewBlock'", func(e ctypes.ResultEvent) (more bool) {
			newBlock, ok := e.Data.(types.EventDataNewBlock)
			require.True(t, ok, "unexpected type %T", e.Data)
			atomic.StoreInt64(s.currentHeight, newBlock.Block.Height)
			return true
		}),
	)
}

func (s *SystemUnderTest) watchLogs(cmd *exec.Cmd) {
	errReader, err := cmd.StderrPipe()
	if err != nil {
		panic(fmt.Sprintf("unexpected error %#+v", err))
	}
	go appendToBuf(errReader, s.errBuff)

	outReader, err := cmd.StdoutPipe()
	if err != nil {
		panic(fmt.Sprintf("unexpected error %#+v", err))
	}
	go appendToBuf(outReader, s.outBuff)
}

func appendToBuf(r io.ReadCloser, b *ring.Ring) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		b.Value = scanner.Text()
		b = b.Next()
	}
}

// awaitChainUp ensures the chain is running
func (s *SystemUnderTest) awaitChainUp(t *testing.T) {
	t.Log("Await chain starts")
	ctx, done := context.WithTimeout(context.Background(), defaultWaitTime)
	defer done()

	started := make(chan struct{})
	go func() { // query for a non empty block on status page
		for ctx.Err() == nil {
			con, err := client.New(s.rpcAddr, "/websocket")
			if err != nil || con.Start() != nil {
				time.Sleep(time.Second)
				continue
			}
			result, err := con.Status(ctx)
			_ = con.Stop()
			if err != nil || result.SyncInfo.LatestBlockHeight < 1 {
				time.Sleep(s.blockTime)
				continue
			}
			t.Logf("Node started. Current block: %d\n", result.SyncInfo.LatestBlockHeight)
			close(started)
			return
		}
	}()
	select {
	case <-started:
	case <-ctx.Done():
		t.Fatalf("timeout waiting for chain start: %s", defaultWaitTime)
	}
}

// StopChain stops the node and executes all registered cleanup callbacks
func (s *SystemUnderTest) StopChain() {
	s.Log("Stop chain")
	for _, c := range s.cleanupFn {
		c()
	}
	s.cleanupFn = nil
	cmd := exec.Command(locateExecutable("pkill"), "-15", binaryName)
	cmd.Dir = workDir
	out, err := cmd.CombinedOutput()
	if err != nil {
		s.Logf("failed to stop chain: %s\n", err)
	}
	s.Log(string(out))
}

// PrintBuffer prints the chain logs to the console
func (s *SystemUnderTest) PrintBuffer() {
	s.outBuff.Do(func(v interface{}) {
		if v != nil {
			fmt.Printf("out> %s\n", v)
		}
	})
	fmt.Print("8< chain err -----------------------------------------\n")
	s.errBuff.Do(func(v interface{}) {
		if v != nil {
			fmt.Printf("err> %s\n", v)
		}
	})
}

// BuildNewBinary installs the cinedao binary from the work dir sources
func (s *SystemUnderTest) BuildNewBinary() {
	s.Log("Install binary\n")
	cmd := exec.Command(locateExecutable("go"), "install", "./cmd/"+binaryName) //nolint:gosec
	cmd.Dir = workDir
	out, err := cmd.CombinedOutput()
	if err != nil {
		panic(fmt.Sprintf("unexpected error %#v : output: %s", err, string(out)))
	}
}

// AwaitNextBlock blocks until the chain height increased or fails the test after two block times
func (s *SystemUnderTest) AwaitNextBlock(t *testing.T) int64 {
	start := atomic.LoadInt64(s.currentHeight)
	deadline := time.NewTimer(s.blockTime * 3)
	defer deadline.Stop()
	for {
		if h := atomic.LoadInt64(s.currentHeight); h > start {
			return h
		}
		select {
		case <-deadline.C:
			t.Fatalf("Timeout - no block within %s", s.blockTime*3)
		case <-time.After(s.blockTime / 10):
		}
	}
}

// ResetChain stops the node, restores the original genesis and clears the node data via
// 'unsafe-reset-all'
func (s *SystemUnderTest) ResetChain(t *testing.T) {
	t.Log("Reset chain")
	s.StopChain()
	// give the process time to release the db lock
	time.Sleep(s.blockTime)
	s.SetGenesis(t, filepath.Join(workDir, s.nodeHome(), "config", "genesis.json.orig"))
	s.ExecAndWait(t, []string{"unsafe-reset-all"})
}

// ModifyGenesisJSON applies the mutators to the node genesis file
func (s *SystemUnderTest) ModifyGenesisJSON(t *testing.T, mutators ...GenesisMutator) {
	genesisFile := filepath.Join(workDir, s.nodeHome(), "config", "genesis.json")
	current, err := ioutil.ReadFile(genesisFile)
	require.NoError(t, err)
	for _, m := range mutators {
		current = m(current)
	}
	require.NoError(t, ioutil.WriteFile(genesisFile, current, 0o600))
}

// SetGenesis copies the genesis file to the node home
func (s *SystemUnderTest) SetGenesis(t *testing.T, srcPath string) {
	require.NoError(t, copyFile(srcPath, filepath.Join(workDir, s.nodeHome(), "config", "genesis.json")))
}

// ExecAndWait runs the given cinedao commands against the node home synchronously
func (s *SystemUnderTest) ExecAndWait(t *testing.T, cmds ...[]string) {
	for _, args := range cmds {
		args = append(args, "--home", s.nodeHome())
		s.Logf("Execute `%s %s`\n", binaryName, strings.Join(args, " "))
		cmd := exec.Command(locateExecutable(binaryName), args...) //nolint:gosec
		cmd.Dir = workDir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
		s.Logf("Result: %s\n", string(out))
	}
}

// AuditorAddr is the bech32 address of node0
func (s *SystemUnderTest) AuditorAddr() string {
	return s.auditorAddr
}

func (s *SystemUnderTest) nodeHome() string {
	return filepath.Join(s.outputDir, "node0", binaryName)
}

func (s *SystemUnderTest) Log(msg string) {
	if s.verbose {
		s.logger.Info(strings.TrimRight(msg, "\n"))
	}
}

func (s *SystemUnderTest) Logf(msg string, args ...interface{}) {
	s.Log(fmt.Sprintf(msg, args...))
}

// locateExecutable looks up the binary on the OS path.
func locateExecutable(file string) string {
	path, err := exec.LookPath(file)
	if err != nil {
		panic(fmt.Sprintf("unexpected error %#v", err))
	}
	if path == "" {
		panic(fmt.Sprintf("%q not found", file))
	}
	return path
}

// lastJSONLine skips any log lines printed before a json document
func lastJSONLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "{") {
			return lines[i]
		}
	}
	return out
}

// EventListener watches for events on the chain
type EventListener struct {
	t      *testing.T
	client *client.HTTP
}

// NewEventListener event listener
func NewEventListener(t *testing.T, rpcAddr string) EventListener {
	httpClient, err := client.New(rpcAddr, "/websocket")
	require.NoError(t, err)
	require.NoError(t, httpClient.Start())
	return EventListener{client: httpClient, t: t}
}

var defaultWaitTime = 30 * time.Second

type (
	CleanupFn     func()
	EventConsumer func(e ctypes.ResultEvent) (more bool)
)

// Subscribe to receive events for a topic.
// For query syntax See https://docs.cosmos.network/master/core/events.html#subscribing-to-events
func (l EventListener) Subscribe(query string, cb EventConsumer) func() {
	ctx, done := context.WithCancel(context.Background())
	eventsChan, err := l.client.WSEvents.Subscribe(ctx, "testing", query)
	require.NoError(l.t, err)
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultWaitTime)
		go func() {
			defer cancel()
			_ = l.client.WSEvents.Unsubscribe(ctx, "testing", query)
		}()
		done()
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case e := <-eventsChan:
				if !cb(e) {
					return
				}
			}
		}
	}()
	return cleanup
}

// copyFile copy source file to dest file path
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
