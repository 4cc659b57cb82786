package advisor

// BuildPrompt exposes buildPrompt for testing
var BuildPrompt = buildPrompt
