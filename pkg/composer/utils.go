package composer

import (
	"context"

	"github.com/NethermindEth/lovenotes/pkg/composer/textgen"
)

type TextGenerator interface {
	Generate(ctx context.Context, prompt string, maxLength int) (string, error)
}

var _ TextGenerator = (*textgen.Adapter)(nil)
