package events_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"shepherd/internal/events"
	"shepherd/internal/repositories"
	"shepherd/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideBroker, provideDispatcher),
	fx.Invoke(registerConsumers),
)

// provideBroker picks RocketMQ when name servers are configured and falls
// back to the in-process channel broker otherwise.
func provideBroker() events.Broker {
	nameServers := os.Getenv("ROCKETMQ_NAMESERVERS")
	if nameServers == "" {
		return events.NewChannelBroker()
	}

	broker, err := events.NewRocketMQBroker(events.RocketMQConfig{
		NameServers:   strings.Split(nameServers, ","),
		ConsumerGroup: "shepherd-consumers",
	})
	if err != nil {
		log.Printf("RocketMQ unavailable (%v), using in-process broker", err)
		return events.NewChannelBroker()
	}
	return broker
}

func provideDispatcher(broker events.Broker, audit services.AuditServiceInterface) *events.Dispatcher {
	return events.NewDispatcher(broker, services.AuditErrorSink(audit))
}

func registerConsumers(
	dispatcher *events.Dispatcher,
	audit services.AuditServiceInterface,
	mail services.MailServiceInterface,
	memberRepo repositories.MemberRepository,
) error {
	return services.RegisterEventConsumers(dispatcher, audit, mail, memberRepo)
}
