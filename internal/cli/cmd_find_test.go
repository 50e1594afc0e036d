package cli_test

import (
	"testing"

	"github.com/kyrylo-sovailo/PersonalDispatcher/internal/cli"
)

func Test_Find_Prints_Matches_Best_First(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument(` - [ ] Sort the socks in the drawer
 - [ ] Deploy the service
 - [X] Deploy the website
`)

	stdout := c.MustRun("find", "deploy")
	if stdout != "2.  (medium)  Deploy the service\n" {
		t.Errorf("stdout=%q", stdout)
	}

	stdout = c.MustRun("find", "deploy", "all")
	cli.AssertContains(t, stdout, "2.  (medium)  Deploy the service\n")
	cli.AssertContains(t, stdout, "3.   (done)   Deploy the website\n")

	stdout = c.MustRun("find", "deploy", "d")
	if stdout != "3.   (done)   Deploy the website\n" {
		t.Errorf("stdout=%q", stdout)
	}
}

func Test_Find_Prints_Nothing_Found_When_No_Match(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument(sampleDocument)

	if got := c.MustRun("find", "zebra"); got != "Nothing found\n" {
		t.Errorf("stdout=%q", got)
	}

	// Done tasks are not searched by default.
	if got := c.MustRun("find", "water"); got != "Nothing found\n" {
		t.Errorf("stdout=%q", got)
	}
}

func Test_Find_Applies_Action_To_Best_Match(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument(sampleDocument)

	stdout := c.MustRun("find", "fix", "priority", "low")
	if stdout != "2.   (low)    Fix bug\n" {
		t.Errorf("stdout=%q", stdout)
	}

	c.MustRun("find", "milk", "edit", "Buy oat milk")

	// "open" is a status, so "done" after it is the action.
	c.MustRun("find", "call", "open", "done")

	c.MustRun("find", "water", "done", "undo")

	assertDocument(t, c, ` - [ ] Buy oat milk
 - [ ] Fix bug (priority: low)
 - [ ] Water plants
 - [X] Call mom (priority: low)
 - [ ] Deploy service (priority: critical)
`)

	c.MustRun("find", "deploy", "remove")
	cli.AssertNotContains(t, c.ReadDocument(), "Deploy service")
}

func Test_Find_Rejects_Invalid_Action(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDocument(sampleDocument)

	cli.AssertContains(t, c.MustFail(10, "find"), "too few arguments")
	cli.AssertContains(t, c.MustFail(10, "find", "milk", "open", "explode"), "'explode' is not a valid status or action")

	// Numbers are not accepted after find; the best match is the target.
	cli.AssertContains(t, c.MustFail(10, "find", "milk", "open", "priority", "2", "low"), "too many arguments")
	cli.AssertContains(t, c.MustFail(10, "find", "milk", "open", "done", "2"), "'2' is not a valid 'commit' suffix")

	assertDocument(t, c, sampleDocument)
}
