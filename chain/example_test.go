package chain_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/patterns/chain"
	"github.com/katalvlaran/patterns/internal/narrate"
)

func ExampleSupportHandler_Handle() {
	n := narrate.New(os.Stdout)
	head := chain.Build(
		chain.NewBasicSupportHandler(n),
		chain.NewTechnicalSupportHandler(n),
		chain.NewBillingSupportHandler(n),
	)

	head.Handle(chain.NewRequest(chain.Basic, "Password reset"))
	head.Handle(chain.NewRequest(chain.Technical, "Server down"))
	head.Handle(chain.NewRequest(chain.Billing, "Invoice missing"))
	handled := head.Handle(chain.NewRequest("Unknown", "Lost and found"))
	fmt.Println("unknown handled:", handled)
	// Output:
	// BasicSupportHandler: Handling basic support request - Password reset
	// TechnicalSupportHandler: Handling technical support request - Server down
	// BillingSupportHandler: Handling billing support request - Invoice missing
	// unknown handled: false
}
