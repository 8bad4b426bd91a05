package quotes

import (
	"github.com/scavara/statusquo/command"
	"github.com/scavara/statusquo/handler"
)

// RegisterHandlers registers all handlers for the quotes package.
func RegisterHandlers() {
	handler.AddCommandHandler(command.Add, AddQuoteHandler)
	handler.AddCommandHandler(command.Update, ManualUpdateHandler)
	handler.AddCommandHandler(command.Search, SearchHandler)
	handler.AddCommandHandler(command.Filter, FilterHandler)

	// Review decision buttons
	handler.AddActionHandler(ApproveActionID, ApproveActionHandler)
	handler.AddActionHandler(RejectActionID, RejectActionHandler)
}
