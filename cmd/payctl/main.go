// Command payctl runs a payroll script file against an in-memory roster
// and prints what it did. It is the external shell the core itself has no
// business knowing about: no logic here that the driver doesn't already
// have, just argument handling and output formatting.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cutsea110/payroll-core/internal/command"
	"github.com/cutsea110/payroll-core/internal/domain"
	"github.com/cutsea110/payroll-core/internal/driver"
	"github.com/cutsea110/payroll-core/internal/store"
	"github.com/cutsea110/payroll-core/internal/txn"
)

func main() {
	log := logrus.StandardLogger()

	if len(os.Args) != 2 {
		log.Fatal("usage: payctl <script-file>")
	}

	scriptBytes, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.WithError(err).Fatal("failed to read script file")
	}

	cmds, err := command.Parse(string(scriptBytes))
	if err != nil {
		log.WithError(err).Fatal("script failed to parse")
	}

	ctx := &txn.Ctx{Store: store.NewMemoryStore()}

	// payctl drives commands itself, rather than through driver.Driver.Run,
	// because it needs each Payday result's deliveries; Driver.Run only
	// reports success/failure.
	var deliveries []domain.Delivery
	source := driver.NewSliceSource(cmds)
	for {
		cmd, ok := source.Next()
		if !ok {
			break
		}
		tx := driver.Build(cmd)
		out, runErr := tx.Run(ctx)
		if runErr != nil {
			log.WithFields(logrus.Fields{
				"command": cmd.Kind.String(),
				"emp_id":  cmd.EmployeeID,
			}).WithError(runErr).Warn("command failed")
			continue
		}
		if ds, ok := out.([]domain.Delivery); ok {
			deliveries = append(deliveries, ds...)
		}
	}

	for _, delivery := range deliveries {
		log.Info(delivery.Line)
	}
}
