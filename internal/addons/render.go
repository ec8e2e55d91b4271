package addons

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
)

// Renderer turns the shipped templates into labeled addon manifests.
type Renderer struct {
	// TemplatesDir holds the fetched templates.
	TemplatesDir string

	// AddonsDir is cleared and repopulated on every run.
	AddonsDir string

	// Context supplies the placeholder values.
	Context Context

	// EnableDashboard includes the dashboard and monitoring templates.
	EnableDashboard bool

	Logger *slog.Logger
}

// Render resets the addon directory and renders every template in the
// fixed list. The reset is unconditional: output from a prior run never
// survives, so the directory always mirrors the current template set.
func (r *Renderer) Render() error {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.RemoveAll(r.AddonsDir); err != nil {
		return fmt.Errorf("failed to clear addon directory: %w", err)
	}
	if err := os.MkdirAll(r.AddonsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create addon directory: %w", err)
	}

	for _, tmpl := range addonTemplates {
		if tmpl.dashboard && !r.EnableDashboard {
			continue
		}
		if err := r.renderOne(logger, tmpl); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderOne(logger *slog.Logger, tmpl addonTemplate) error {
	source, err := os.ReadFile(filepath.Join(r.TemplatesDir, tmpl.name))
	if err != nil {
		if tmpl.optional && errors.Is(err, fs.ErrNotExist) {
			logger.Debug("skipping optional template", slog.String("template", tmpl.name))
			return nil
		}
		return fmt.Errorf("failed to read template %s: %w", tmpl.name, err)
	}

	parsed, err := template.New(tmpl.name).Funcs(r.Context.funcs()).Parse(string(source))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", tmpl.name, err)
	}

	var rendered bytes.Buffer
	if err := parsed.Execute(&rendered, nil); err != nil {
		return fmt.Errorf("failed to render template %s: %w", tmpl.name, err)
	}

	labeled, count, err := injectLabels(rendered.Bytes())
	if err != nil {
		return fmt.Errorf("failed to label manifests in %s: %w", tmpl.name, err)
	}
	if count == 0 {
		// Nothing to apply; an empty file would only confuse kubectl.
		logger.Debug("template produced no documents", slog.String("template", tmpl.name))
		return nil
	}

	dest := filepath.Join(r.AddonsDir, tmpl.name)
	if err := os.WriteFile(dest, labeled, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", tmpl.name, err)
	}
	logger.Debug("rendered addon manifest",
		slog.String("template", tmpl.name),
		slog.Int("documents", count),
	)
	return nil
}
