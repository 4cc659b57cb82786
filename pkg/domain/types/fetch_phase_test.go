package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mnemosyne-lab/mnemosyne/pkg/domain/types"
)

func TestFetchPhase(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		gt.B(t, types.FetchPhaseIdle.IsValid()).True()
		gt.B(t, types.FetchPhaseLoading.IsValid()).True()
		gt.B(t, types.FetchPhaseLoaded.IsValid()).True()
		gt.B(t, types.FetchPhaseError.IsValid()).True()
		gt.B(t, types.FetchPhase("done").IsValid()).False()
	})

	t.Run("terminal phases", func(t *testing.T) {
		gt.B(t, types.FetchPhaseLoaded.IsTerminal()).True()
		gt.B(t, types.FetchPhaseError.IsTerminal()).True()
		gt.B(t, types.FetchPhaseIdle.IsTerminal()).False()
		gt.B(t, types.FetchPhaseLoading.IsTerminal()).False()
	})
}
