package convert

import (
	"go.uber.org/zap"

	"msfmt/config"
	"msfmt/content"
	"msfmt/convert/docx"
	"msfmt/convert/preview"
)

// Format reads DOCX manuscript and returns formatted DOCX.
func Format(data []byte, cfg *config.DocumentConfig, log *zap.Logger) ([]byte, error) {
	c, err := content.Prepare(data, &cfg.Format, log)
	if err != nil {
		return nil, err
	}
	return assemble(c, cfg, log)
}

// Preview reads DOCX manuscript and returns HTML preview of formatted result.
func Preview(data []byte, cfg *config.DocumentConfig, opts preview.Options, log *zap.Logger) (*preview.Result, error) {
	c, err := content.Prepare(data, &cfg.Format, log)
	if err != nil {
		return nil, err
	}
	return preview.Render(c, opts, log)
}

func assemble(c *content.Content, cfg *config.DocumentConfig, log *zap.Logger) ([]byte, error) {
	out, err := docx.Assemble(c, log)
	if err != nil {
		return nil, err
	}
	if cfg.FixZip {
		return docx.RepackWithoutDataDescriptors(out)
	}
	return out, nil
}
