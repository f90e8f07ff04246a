package out

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ingestout "mealcoach/internal/modules/ingest/port/out"
)

// CommandCamera captures a still by running an external program such as
// fswebcam or imagesnap. Every "{output}" in argv is replaced with the path
// the program must write the JPEG to.
type CommandCamera struct {
	argv        []string
	placeholder string
}

func NewCommandCamera(argv []string, placeholder string) ingestout.Camera {
	return &CommandCamera{argv: argv, placeholder: placeholder}
}

func (c *CommandCamera) Capture(ctx context.Context) ([]byte, error) {
	if len(c.argv) == 0 {
		return nil, fmt.Errorf("camera capture is not configured for this platform")
	}
	dir, err := os.MkdirTemp("", "mealcoach-capture-")
	if err != nil {
		return nil, fmt.Errorf("create capture dir: %w", err)
	}
	defer os.RemoveAll(dir)

	target := filepath.Join(dir, "capture.jpg")
	args := make([]string, len(c.argv))
	for i, arg := range c.argv {
		args[i] = strings.ReplaceAll(arg, c.placeholder, target)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if output, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(output))
		if msg != "" {
			return nil, fmt.Errorf("run %s: %w: %s", args[0], err, msg)
		}
		return nil, fmt.Errorf("run %s: %w", args[0], err)
	}

	payload, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("read captured image: %w", err)
	}
	return payload, nil
}
