package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

// useTempLedger points the package's ledger file at a throwaway path for the
// duration of the test.
func useTempLedger(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storage.json")
	old := *ledgerFile
	*ledgerFile = path
	t.Cleanup(func() { *ledgerFile = old })
	return path
}

// run executes a command the way the commander would, with its own flag set.
func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: could not parse args %v: %v", cmd.Name(), args, err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestRegisterCmd(t *testing.T) {
	path := useTempLedger(t)

	if status := run(t, &registerCmd{}, "-ns", "guild1", "-id", "alice", "-name", "Alice"); status != subcommands.ExitSuccess {
		t.Fatalf("register exited %v, want success", status)
	}

	ledger, err := stockpile.NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("could not load the ledger back: %v", err)
	}
	if !ledger.AccountExists("guild1", "alice") {
		t.Error("registered account is not in the persisted document")
	}

	// Registering the same account again must fail.
	if status := run(t, &registerCmd{}, "-ns", "guild1", "-id", "alice"); status != subcommands.ExitFailure {
		t.Errorf("duplicate register exited %v, want failure", status)
	}
}

func TestRegisterCmd_MissingFlags(t *testing.T) {
	useTempLedger(t)
	if status := run(t, &registerCmd{}, "-ns", "guild1"); status != subcommands.ExitUsageError {
		t.Errorf("register without -id exited %v, want usage error", status)
	}
}

func TestDepositWithdrawCmds(t *testing.T) {
	path := useTempLedger(t)
	run(t, &registerCmd{}, "-ns", "guild1", "-id", "alice")

	if status := run(t, &depositCmd{}, "-ns", "guild1", "-id", "alice", "-item", "gold", "-n", "30"); status != subcommands.ExitSuccess {
		t.Fatalf("deposit exited %v, want success", status)
	}
	if status := run(t, &withdrawCmd{}, "-ns", "guild1", "-id", "alice", "-item", "gold", "-n", "12"); status != subcommands.ExitSuccess {
		t.Fatalf("withdraw exited %v, want success", status)
	}
	// Overdraw must fail and change nothing.
	if status := run(t, &withdrawCmd{}, "-ns", "guild1", "-id", "alice", "-item", "gold", "-n", "100"); status != subcommands.ExitFailure {
		t.Fatalf("overdraw exited %v, want failure", status)
	}

	ledger, err := stockpile.NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("could not load the ledger back: %v", err)
	}
	got, err := ledger.GetQuantity("guild1", "alice", "gold")
	if err != nil {
		t.Fatalf("GetQuantity() returned an unexpected error: %v", err)
	}
	if !got.Equal(stockpile.Q(18)) {
		t.Errorf("persisted balance = %s, want 18", got)
	}
}

func TestSetCmd_Directives(t *testing.T) {
	path := useTempLedger(t)
	run(t, &registerCmd{}, "-ns", "guild1", "-id", "alice")

	steps := []struct {
		directive string
		want      int64
		status    subcommands.ExitStatus
	}{
		{"26", 26, subcommands.ExitSuccess},
		{"+2", 28, subcommands.ExitSuccess},
		{"-6", 22, subcommands.ExitSuccess},
		{"-0", 22, subcommands.ExitUsageError},
		{"abc", 22, subcommands.ExitUsageError},
	}
	for _, step := range steps {
		status := run(t, &setCmd{}, "-ns", "guild1", "-id", "alice", "-item", "gold", "--", step.directive)
		if status != step.status {
			t.Fatalf("set %q exited %v, want %v", step.directive, status, step.status)
		}
		ledger, err := stockpile.NewFileStore(path).Load()
		if err != nil {
			t.Fatalf("could not load the ledger back: %v", err)
		}
		got, _ := ledger.GetQuantity("guild1", "alice", "gold")
		if got.Int64() != step.want {
			t.Errorf("after set %q: balance = %s, want %d", step.directive, got, step.want)
		}
	}
}

func TestTransferCmd(t *testing.T) {
	path := useTempLedger(t)
	run(t, &registerCmd{}, "-ns", "guild1", "-id", "alice")
	run(t, &registerCmd{}, "-ns", "guild1", "-id", "bob")
	run(t, &depositCmd{}, "-ns", "guild1", "-id", "alice", "-item", "gold", "-n", "100")

	if status := run(t, &transferCmd{}, "-ns", "guild1", "-from", "alice", "-to", "bob", "-item", "gold", "-n", "40"); status != subcommands.ExitSuccess {
		t.Fatalf("transfer exited %v, want success", status)
	}
	if status := run(t, &transferCmd{}, "-ns", "guild1", "-from", "alice", "-to", "alice", "-item", "gold", "-n", "1"); status != subcommands.ExitFailure {
		t.Errorf("self transfer exited %v, want failure", status)
	}

	ledger, err := stockpile.NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("could not load the ledger back: %v", err)
	}
	alice, _ := ledger.GetQuantity("guild1", "alice", "gold")
	bob, _ := ledger.GetQuantity("guild1", "bob", "gold")
	if !alice.Equal(stockpile.Q(60)) || !bob.Equal(stockpile.Q(40)) {
		t.Errorf("persisted balances = %s/%s, want 60/40", alice, bob)
	}
}

func TestResetCmd(t *testing.T) {
	path := useTempLedger(t)
	run(t, &registerCmd{}, "-ns", "guild1", "-id", "alice")
	run(t, &registerCmd{}, "-ns", "guild2", "-id", "zoe")

	// Without -yes, nothing happens.
	if status := run(t, &resetCmd{}, "-ns", "guild1"); status != subcommands.ExitUsageError {
		t.Fatalf("reset without -yes exited %v, want usage error", status)
	}
	if status := run(t, &resetCmd{}, "-ns", "guild1", "-yes"); status != subcommands.ExitSuccess {
		t.Fatalf("reset exited %v, want success", status)
	}

	ledger, err := stockpile.NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("could not load the ledger back: %v", err)
	}
	if ledger.AccountExists("guild1", "alice") {
		t.Error("guild1/alice survived the reset")
	}
	if !ledger.AccountExists("guild2", "zoe") {
		t.Error("guild2/zoe should survive a guild1 reset")
	}
}
