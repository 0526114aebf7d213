package image

import (
	"encoding/base64"

	"github.com/samber/lo"
	"google.golang.org/genai"
)

// Extract collects every inline image from the upstream result, in
// candidate order then part order. No deduplication and no filtering
// by mime type; a part without inline data yields nothing, and a
// missing mime type falls back to DefaultMimeType.
func Extract(resp *genai.GenerateContentResponse) []Result {
	if resp == nil {
		return nil
	}

	var results []Result
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			results = append(results, Result{
				MimeType: lo.CoalesceOrEmpty(part.InlineData.MIMEType, DefaultMimeType),
				Data:     base64.StdEncoding.EncodeToString(part.InlineData.Data),
			})
		}
	}
	return results
}
