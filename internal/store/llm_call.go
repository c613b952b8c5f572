package store

import (
	"context"
	"fmt"

	"github.com/wliu/gradewise/ent"
)

// llmLogRepo is the ent-backed LLMLogRepo.
type llmLogRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *llmLogRepo) AppendLLMCall(ctx context.Context, data LLMCallData) error {
	seq, err := r.seq.Next()
	if err != nil {
		return err
	}

	_, err = r.client.LLMCallEvent.Create().
		SetSequence(seq).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetCostUsd(data.CostUSD).
		SetSuccess(data.Success).
		SetErrorMessage(data.Error).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append LLM call event: %w", err)
	}
	return nil
}
