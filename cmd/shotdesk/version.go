package main

import "fmt"

type versionCmd struct {
	command
}

func parseVersionCmd(args []string, r *root) (*versionCmd, error) {
	cmd := &versionCmd{command: newCommand(r, "version")}
	if err := cmd.parse(args, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (v *versionCmd) Run() error {
	fmt.Fprintf(v.root.out(), "%s version %s", v.root.program, version)
	if commit != "" {
		fmt.Fprintf(v.root.out(), " (%s", commit)
		if date != "" {
			fmt.Fprintf(v.root.out(), ", %s", date)
		}
		fmt.Fprint(v.root.out(), ")")
	}
	fmt.Fprintln(v.root.out())
	return nil
}
