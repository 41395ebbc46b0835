package responses

type Provider struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specializations []string `json:"specializations"`
}

type Availability struct {
	ProviderID     string   `json:"providerId"`
	Specialization string   `json:"specialization"`
	Days           []string `json:"days,omitempty"`
	Day            string   `json:"day,omitempty"`
	Slots          []string `json:"slots,omitempty"`
}
