package usecase

import (
	"context"
	"fmt"
	"strings"

	"dayplanner/internal/planner/toolcall"
	"dayplanner/pkg/llmprovider"
)

// runBridge handles a line no deterministic command matched: it sends the
// conversation plus a task summary and the tool-call contract to the language
// model, then extracts and executes at most one action from the reply.
// A bridge failure never touches the task list.
func (uc *implUseCase) runBridge(ctx context.Context, sess *session, message string) (string, bool) {
	tasks, err := uc.repo.GetTasks(ctx, sess.activeDate)
	if err != nil {
		uc.l.Errorf(ctx, "planner.runBridge: get tasks: %v", err)
		return "I could not read the task list right now.", false
	}

	req := &llmprovider.Request{
		SystemInstruction: uc.buildContext(sess.activeDate, tasks),
		Messages:          uc.buildHistory(sess, message),
		Temperature:       bridgeTemperature,
		MaxTokens:         bridgeMaxTokens,
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "planner.runBridge: generation failed: %v", err)
		return fmt.Sprintf("I could not reach the assistant service: %v", err), false
	}

	payload, remainder := toolcall.Extract(resp.Text)
	if payload == nil {
		// No action embedded in the reply, show it as-is.
		return strings.TrimSpace(resp.Text), false
	}

	res := uc.applyCall(ctx, sess, toolcall.Decode(payload))
	reply := res.Message
	if remainder != "" {
		reply = strings.TrimSpace(reply + "\n\n" + remainder)
	}
	return reply, res.Celebrate
}

func (uc *implUseCase) buildHistory(sess *session, message string) []llmprovider.Message {
	prior := sess.transcript
	if len(prior) > bridgeHistoryLimit {
		prior = prior[len(prior)-bridgeHistoryLimit:]
	}

	history := make([]llmprovider.Message, 0, len(prior)+1)
	for _, entry := range prior {
		history = append(history, llmprovider.Message{
			Role: string(entry.Role),
			Text: entry.Text,
		})
	}
	return append(history, llmprovider.Message{Role: "user", Text: message})
}
