package steps

import (
	"fmt"

	"github.com/toolkitbuild/tpl-setup/internal/system"
	"github.com/toolkitbuild/tpl-setup/internal/ui"
)

// DefaultGroup is the Unix group that owns shared TPL install trees.
const DefaultGroup = "toolkitd"

// PermResult records the outcome of one best-effort permission command
type PermResult struct {
	Argv     []string
	ExitCode int
	Err      error // spawn failure; recorded, never escalated
}

// Failed reports whether the command did not complete successfully
func (r PermResult) Failed() bool {
	return r.Err != nil || r.ExitCode != 0
}

// PermsSetter applies group ownership and access permissions to a directory
// tree
type PermsSetter struct {
	exec system.Executor
	ui   *ui.UI
}

// NewPermsSetter creates a new PermsSetter instance
func NewPermsSetter(exec system.Executor, ui *ui.UI) *PermsSetter {
	return &PermsSetter{
		exec: exec,
		ui:   ui,
	}
}

// SetGroupAndPerms recursively changes the group of dir to group, grants rwX
// to group members, and rX to all users. Every command carries -f and the
// full sequence always runs; individual failures are collected in the
// returned results rather than aborting the sequence.
func (p *PermsSetter) SetGroupAndPerms(dir, group string) []PermResult {
	if group == "" {
		group = DefaultGroup
	}

	p.ui.Infof("changing group and access perms of: %s", dir)

	commands := []struct {
		desc string
		argv []string
	}{
		{fmt.Sprintf("changing group to %s", group), []string{"chgrp", "-f", "-R", group, dir}},
		{fmt.Sprintf("changing perms for %s members to rwX", group), []string{"chmod", "-f", "-R", "g+rwX", dir}},
		{"changing perms for all users to rX", []string{"chmod", "-f", "-R", "a+rX", dir}},
	}

	results := make([]PermResult, 0, len(commands))
	for _, c := range commands {
		p.ui.Info(c.desc)

		r := PermResult{Argv: c.argv}
		res, err := p.exec.Run(c.argv, system.RunOptions{Echo: true})
		if err != nil {
			r.Err = err
			r.ExitCode = -1
			p.ui.Warningf("could not run %s: %v", c.argv[0], err)
		} else {
			r.ExitCode = res.ExitCode
		}
		results = append(results, r)
	}

	return results
}

// Run executes the permission step against dir, reporting but not failing on
// individual command failures.
func (p *PermsSetter) Run(dir, group string) error {
	results := p.SetGroupAndPerms(dir, group)

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}

	if failed > 0 {
		p.ui.Warningf("%d of %d permission commands did not fully succeed", failed, len(results))
	} else {
		p.ui.Successf("Group and permissions set on %s", dir)
	}
	return nil
}
