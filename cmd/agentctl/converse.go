package main

import (
	"context"
	"fmt"

	"elasticart/internal/infra/agentbuilder"
)

// runConverse sends one message to an agent and prints the reply. Passing
// the returned conversation id back in continues the same conversation.
func runConverse(ctx context.Context, client *agentbuilder.Client, agentID, message, conversationID string) error {
	resp, err := client.Converse(ctx, agentID, message, conversationID)
	if err != nil {
		return err
	}

	fmt.Println(resp.Response)
	if resp.ConversationID != "" {
		fmt.Printf("\nConversation: %s\n", resp.ConversationID)
	}

	return nil
}
