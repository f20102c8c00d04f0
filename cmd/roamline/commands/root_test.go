package commands

import "testing"

func findCommand(t *testing.T, name string) bool {
	t.Helper()
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name {
			return true
		}
	}
	return false
}

func TestCommandRegistration(t *testing.T) {
	t.Run("should register the top-level commands", func(t *testing.T) {
		for _, name := range []string{"leads", "seed", "audit"} {
			if !findCommand(t, name) {
				t.Fatalf("wanted %q to be registered on root", name)
			}
		}
	})

	t.Run("should register the leads subcommands", func(t *testing.T) {
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() != "leads" {
				continue
			}
			names := map[string]bool{}
			for _, sub := range cmd.Commands() {
				names[sub.Name()] = true
			}
			if !names["list"] || !names["add"] {
				t.Fatalf("wanted list and add under leads\ngot: %v", names)
			}
			return
		}
		t.Fatalf("leads command not found")
	})

	t.Run("should format the version string", func(t *testing.T) {
		SetVersionInfo("1.2.3", "abc", "today")
		if rootCmd.Version != "1.2.3 (commit: abc, built: today)" {
			t.Fatalf("wanted formatted version\ngot: %q", rootCmd.Version)
		}
	})
}
