// Package evidence builds the short environment-status block injected into
// the boot document alongside the compiled lens. It is the engine's only
// window into the outside world, and it is deliberately forgiving: every
// failure degrades to placeholder text, so the engine never observes a
// gathering error.
package evidence

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lazypower/metacog/internal/config"
)

// Gatherer collects evidence from the agent's environment.
type Gatherer struct {
	Cfg config.EvidenceConfig
	Log *zap.Logger

	// Now is the clock used for the evidence header. Tests freeze it.
	Now func() time.Time
}

// New creates a Gatherer. A nil logger is replaced with a no-op logger.
func New(cfg config.EvidenceConfig, log *zap.Logger) *Gatherer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gatherer{Cfg: cfg, Log: log, Now: time.Now}
}

// Compile builds the evidence block: a timestamp header, the system status
// line, and recent activity. It never fails.
func (g *Gatherer) Compile() string {
	var b strings.Builder

	b.WriteString("*Evidence: " + g.Now().Format("15:04") + "*\n\n")
	b.WriteString("**System:** " + g.systemStatus())

	if recent := g.recentActivity(); len(recent) > 0 {
		b.WriteString("\n**Recent:** " + strings.Join(recent, " | "))
	}

	return b.String()
}

// systemStatus runs the configured probe command and returns its first
// output line. No probe configured reports "running"; a failing probe
// degrades to "unknown".
func (g *Gatherer) systemStatus() string {
	command := g.Cfg.ProbeCommand
	if command == "" {
		return "running"
	}

	timeout := time.Duration(g.Cfg.ProbeTimeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		g.Log.Warn("probe command failed", zap.String("command", command), zap.Error(err))
		return "unknown"
	}

	line, _, _ := strings.Cut(strings.TrimSpace(stdout.String()), "\n")
	if line == "" {
		return "running"
	}
	return line
}

// recentActivity returns the last N non-blank lines of the activity log.
// A missing log is simply no activity.
func (g *Gatherer) recentActivity() []string {
	n := g.Cfg.RecentLines
	if n <= 0 || g.Cfg.ActivityLog == "" {
		return nil
	}

	data, err := os.ReadFile(g.Cfg.ActivityLog)
	if err != nil {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
