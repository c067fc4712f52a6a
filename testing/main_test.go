//go:build system_test
// +build system_test

package testing

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var (
	sut     *SystemUnderTest
	verbose bool
)

func TestMain(m *testing.M) {
	rebuild := flag.Bool("rebuild", false, "rebuild artifacts")
	waitTime := flag.Duration("wait-time", defaultWaitTime, "time to wait for chain events")
	blockTime := flag.Duration("block-time", time.Second, "block creation time")
	flag.BoolVar(&verbose, "verbose", false, "verbose output")
	flag.Parse()

	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	workDir = filepath.Join(dir, "../")
	if verbose {
		println("Work dir: ", workDir)
	}
	defaultWaitTime = *waitTime
	sut = NewSystemUnderTest(verbose, *blockTime)
	if *rebuild {
		sut.BuildNewBinary()
	}
	// setup single node chain and keyring
	sut.SetupChain()

	// run tests
	exitCode := m.Run()

	// postprocess
	sut.StopChain()
	if verbose || exitCode != 0 {
		sut.PrintBuffer()
		printResultFlag(exitCode == 0)
	}
	os.Exit(exitCode)
}

func printResultFlag(ok bool) {
	if ok {
		fmt.Println("--- system tests passed")
	} else {
		fmt.Println("--- system tests failed")
	}
}
