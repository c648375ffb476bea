package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Address string `env:"CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"CMD_TEST_MODE" envDefault:"server"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("CMD_TEST_MODE", "env-mode")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Address, "address", cfgRef.Address, "address")
	fs.StringVar(&cfgRef.Mode, "mode", cfgRef.Mode, "mode")

	if err := ParseArgs(fs, []string{"-address", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Address != "flag:9001" {
		t.Fatalf("expected flag value for address, got %q", cfgRef.Address)
	}
	if cfgRef.Mode != "env-mode" {
		t.Fatalf("expected env default mode, got %q", cfgRef.Mode)
	}
}

func TestParseConfigFromUsesSuppliedEnvironment(t *testing.T) {
	t.Parallel()

	cfgRef := testConfig{}
	if err := ParseConfigFrom(&cfgRef, map[string]string{"CMD_TEST_MODE": "map-mode"}); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfgRef.Address != "127.0.0.1:8080" {
		t.Fatalf("Address = %q, want default", cfgRef.Address)
	}
	if cfgRef.Mode != "map-mode" {
		t.Fatalf("Mode = %q, want %q", cfgRef.Mode, "map-mode")
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	t.Parallel()

	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target to be rejected")
	}
	if err := ParseConfigFrom[testConfig](nil, nil); err == nil {
		t.Fatal("expected nil target to be rejected")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	t.Parallel()

	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRequiresServiceAndRun(t *testing.T) {
	t.Parallel()

	run := func(context.Context) error { return nil }
	if err := RunWithTelemetry(context.Background(), " ", TelemetryOptions{}, run); err == nil {
		t.Fatal("expected blank service name to be rejected")
	}
	if err := RunWithTelemetry(context.Background(), ServiceWeb, TelemetryOptions{}, nil); err == nil {
		t.Fatal("expected nil run to be rejected")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	called := false
	err := RunWithTelemetry(context.Background(), ServiceWeb, TelemetryOptions{}, func(context.Context) error {
		called = true
		return boom
	})
	if !called {
		t.Fatal("run was not called")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("RunWithTelemetry() error = %v, want %v", err, boom)
	}
}
