package cmd

// Config carries the process configuration read from the environment at
// startup.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	KafkaHost            string
	KafkaOrderTopic      string
	RestaurantServiceURL string
}
