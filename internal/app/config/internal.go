package config

type InternalConfig struct {
	App App
}

type App struct {
	Env                          string
	Port                         string
	Version                      string
	Timezone                     string
	EndpointPrefix               string
	NotificationQueue            string
	MaxRequests                  int
	ShutdownTimeoutInSeconds     int
	RequestTimeoutInSeconds      int
	ScheduleCacheTTLInSeconds    int
	RescheduleLockTTLInSeconds   int
	QueuePublishTimeoutInSeconds int
	QueuePrefetch                int
}
