package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/shakeelmo/smartuniit-task-flow-sub001/config"
	"github.com/shakeelmo/smartuniit-task-flow-sub001/document"
	"github.com/shakeelmo/smartuniit-task-flow-sub001/handlers"
	"github.com/shakeelmo/smartuniit-task-flow-sub001/render"
)

func main() {
	root := &cobra.Command{
		Use:   "smartdoc",
		Short: "Render quotations, invoices and proposals as PDF and spreadsheet documents",
	}
	root.AddCommand(serveCmd(), renderCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the document rendering HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			r := mux.NewRouter()
			r.Use(handlers.RequestLogger)
			handlers.Routes(r, cfg.Company)

			log.Printf("serve: listening on %s", cfg.Server.Addr)
			return http.ListenAndServe(cfg.Server.Addr, r)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to the YAML configuration file")
	return cmd
}

func renderCmd() *cobra.Command {
	var (
		cfgPath string
		kind    string
		format  string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "render [model.json ...]",
		Short: "Batch-render document model files to PDF and/or XLSX",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			flavor, err := render.FlavorForKind(kind)
			if err != nil {
				return err
			}
			if format != "pdf" && format != "xlsx" && format != "both" {
				return fmt.Errorf("unknown format %q (want pdf, xlsx or both)", format)
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			// Renders are independent: each gets fresh layout state, so the
			// batch can fan out without synchronization.
			var wg sync.WaitGroup
			errs := make(chan error, len(args))
			for _, path := range args {
				wg.Add(1)
				go func(path string) {
					defer wg.Done()
					if err := renderFile(cmd.Context(), path, flavor, cfg.Company, format, outDir); err != nil {
						errs <- fmt.Errorf("%s: %w", path, err)
					}
				}(path)
			}
			wg.Wait()
			close(errs)

			failed := 0
			for err := range errs {
				failed++
				log.Printf("render: %v", err)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to the YAML configuration file")
	cmd.Flags().StringVarP(&kind, "kind", "k", "quotation", "document kind: quotation, invoice or proposal")
	cmd.Flags().StringVarP(&format, "format", "f", "both", "output format: pdf, xlsx or both")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	return cmd
}

// renderFile renders a single document model file to the requested formats.
func renderFile(ctx context.Context, path string, flavor render.Flavor, brand render.Branding, format, outDir string) error {
	jobID := uuid.NewString()[:8]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read model: %w", err)
	}

	var model document.DocumentModel
	if err := json.Unmarshal(data, &model); err != nil {
		return fmt.Errorf("parse model: %w", err)
	}
	if err := model.Validate(); err != nil {
		return fmt.Errorf("invalid model: %w", err)
	}

	base := flavor.Kind + "-" + safeName(model.Number)

	if format == "pdf" || format == "both" {
		assembler := render.NewAssembler(flavor, brand)
		pdfBytes, err := assembler.RenderPDF(ctx, &model)
		if err != nil {
			return fmt.Errorf("render pdf: %w", err)
		}
		out := filepath.Join(outDir, base+".pdf")
		if err := os.WriteFile(out, pdfBytes, 0o644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Printf("render: %s wrote %s", jobID, out)
	}

	if format == "xlsx" || format == "both" {
		xlsxBytes, err := render.RenderWorkbook(&model, flavor)
		if err != nil {
			return fmt.Errorf("render workbook: %w", err)
		}
		out := filepath.Join(outDir, base+".xlsx")
		if err := os.WriteFile(out, xlsxBytes, 0o644); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		log.Printf("render: %s wrote %s", jobID, out)
	}

	return nil
}

func safeName(s string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", " ", "_")
	out := replacer.Replace(s)
	if out == "" {
		return "document"
	}
	return out
}
