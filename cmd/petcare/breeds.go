package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pet-care-scheduler/internal/domain/breeds"
)

func newBreedsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breeds",
		Short: "Listar, agregar y quitar razas",
	}
	cmd.AddCommand(newBreedsListCmd(e), newBreedsAddCmd(e), newBreedsRemoveCmd(e))
	return cmd
}

func newBreedsListCmd(e *env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Cargar el catálogo (API + razas propias) y mostrarlo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.loadCatalog(cmd.Context()); err != nil {
				return err
			}
			return printBreeds(cmd.OutOrStdout(), e.catalog.Snapshot().Breeds, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "salida JSON")
	return cmd
}

func newBreedsAddCmd(e *env) *cobra.Command {
	var (
		name        string
		temperament string
		lifeSpan    string
		imagePath   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Agregar una raza propia (queda guardada en el slot local)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := breeds.Draft{Name: name, Temperament: temperament, LifeSpan: lifeSpan}
			if imagePath != "" {
				data, err := os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("reading image: %w", err)
				}
				uri, err := breeds.ImageDataURI(data)
				if err != nil {
					return fmt.Errorf("%s: %w", imagePath, err)
				}
				draft.Image = &uri
			}

			if err := e.loadCatalog(cmd.Context()); err != nil {
				return err
			}
			rec, err := e.catalog.Add(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", rec.Name, rec.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "nombre de la raza (obligatorio)")
	cmd.Flags().StringVar(&temperament, "temperament", "", "temperamento")
	cmd.Flags().StringVar(&lifeSpan, "life-span", "", "expectativa de vida, ej. 10-12 years")
	cmd.Flags().StringVar(&imagePath, "image", "", "archivo de imagen a guardar inline")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newBreedsRemoveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Quitar una raza propia del slot local",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.loadCatalog(cmd.Context()); err != nil {
				return err
			}
			if err := e.catalog.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
}

type breedJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Temperament string  `json:"temperament"`
	LifeSpan    string  `json:"life_span"`
	ImageURL    *string `json:"image_url"`
	AddedByUser bool    `json:"added_by_user"`
}

func printBreeds(w io.Writer, records []breeds.Record, asJSON bool) error {
	if asJSON {
		out := make([]breedJSON, 0, len(records))
		for _, r := range records {
			out = append(out, breedJSON{
				ID:          r.ID,
				Name:        r.Name,
				Temperament: r.Temperament,
				LifeSpan:    r.LifeSpan,
				ImageURL:    r.Image.URL,
				AddedByUser: r.AddedByUser(),
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLIFE SPAN\tTEMPERAMENT\tUSER")
	for _, r := range records {
		user := ""
		if r.AddedByUser() {
			user = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.LifeSpan, r.Temperament, user)
	}
	return tw.Flush()
}
