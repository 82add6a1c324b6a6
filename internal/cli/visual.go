package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voxforge/studio/internal/prompt"
)

var (
	flagPreviewSegment int
	flagPreviewOut     string
)

var previewCmd = &cobra.Command{
	Use:   "preview <script-id>",
	Short: "Render one segment's visual as an image and attach it to the script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		saved, st, err := loadScript(ctx, args[0])
		if err != nil {
			return err
		}
		if flagPreviewSegment < 0 || flagPreviewSegment >= len(saved.Segments) {
			return fmt.Errorf("--segment must be in [0, %d] for this script", len(saved.Segments)-1)
		}

		s, err := newStudio(ctx)
		if err != nil {
			return err
		}
		dataURL, err := s.GenerateVisualPreview(ctx, saved.Segments[flagPreviewSegment].Visual)
		if err != nil {
			return err
		}

		// Attach the rendered image to the one segment and save the script
		// back; everything else in the document stays as stored.
		updated, err := saved.Document.WithSegmentImage(flagPreviewSegment, dataURL)
		if err != nil {
			return err
		}
		saved.Document = *updated
		if err := st.Save(ctx, saved); err != nil {
			return err
		}
		fmt.Printf("Attached preview to segment %d of %s\n", flagPreviewSegment, saved.ID)
		return writeImage(dataURL, flagPreviewOut)
	},
}

var (
	flagThumbCreator string
	flagThumbText    string
	flagThumbAspect  string
	flagThumbOut     string
)

var thumbnailCmd = &cobra.Command{
	Use:   "thumbnail <script-id>",
	Short: "Generate a thumbnail in the script creator's visual identity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		saved, _, err := loadScript(ctx, args[0])
		if err != nil {
			return err
		}

		creatorID := flagThumbCreator
		if creatorID == "" {
			creatorID = saved.CreatorID
		}
		overlay := flagThumbText
		if overlay == "" {
			overlay = saved.Title
		}

		s, err := newStudio(ctx)
		if err != nil {
			return err
		}
		dataURL, err := s.GenerateThumbnail(ctx, creatorID, prompt.ThumbnailSpec{
			Topic:       saved.Topic,
			TextOverlay: overlay,
			Language:    saved.Language,
			AspectRatio: flagThumbAspect,
		})
		if err != nil {
			return err
		}
		return writeImage(dataURL, flagThumbOut)
	},
}

var (
	flagEditInstruction string
	flagEditOut         string
)

var editImageCmd = &cobra.Command{
	Use:   "edit-image <image-file>",
	Short: "Apply an edit instruction to a generated image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if flagEditInstruction == "" {
			return fmt.Errorf("--instruction is required")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image %s: %w", args[0], err)
		}
		s, err := newStudio(ctx)
		if err != nil {
			return err
		}
		dataURL, err := s.EditImage(ctx, base64.StdEncoding.EncodeToString(data), flagEditInstruction)
		if err != nil {
			return err
		}
		return writeImage(dataURL, flagEditOut)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd, thumbnailCmd, editImageCmd)
	previewCmd.Flags().IntVarP(&flagPreviewSegment, "segment", "s", 0, "Segment index to render")
	previewCmd.Flags().StringVarP(&flagPreviewOut, "out", "o", "preview.png", "Output image path")
	thumbnailCmd.Flags().StringVar(&flagThumbCreator, "creator", "", "Persona id for the visual style (defaults to the script's creator)")
	thumbnailCmd.Flags().StringVar(&flagThumbText, "text", "", "Overlay text (defaults to the script title)")
	thumbnailCmd.Flags().StringVar(&flagThumbAspect, "aspect", "", "Aspect ratio, e.g. 16:9 or 9:16")
	thumbnailCmd.Flags().StringVarP(&flagThumbOut, "out", "o", "thumbnail.png", "Output image path")
	editImageCmd.Flags().StringVarP(&flagEditOut, "out", "o", "edited.png", "Output image path")
	editImageCmd.Flags().StringVar(&flagEditInstruction, "instruction", "", "Edit instruction")
}

// writeImage decodes a data URL onto disk.
func writeImage(dataURL, path string) error {
	idx := strings.Index(dataURL, ",")
	if idx < 0 || !strings.HasPrefix(dataURL, "data:") {
		return fmt.Errorf("unexpected image payload")
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+1:])
	if err != nil {
		return fmt.Errorf("decode image data: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("Saved %s (%d bytes)\n", path, len(raw))
	return nil
}
