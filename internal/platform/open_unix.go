//go:build !darwin && !windows

package platform

func openCommand(path string) (string, []string) {
	return "xdg-open", []string{path}
}
