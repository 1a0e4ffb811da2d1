package themeparks

// EntityType classifies an entity in the upstream catalogue.
type EntityType string

const (
	EntityDestination EntityType = "DESTINATION"
	EntityPark        EntityType = "PARK"
	EntityAttraction  EntityType = "ATTRACTION"
	EntityRestaurant  EntityType = "RESTAURANT"
	EntityHotel       EntityType = "HOTEL"
	EntityShow        EntityType = "SHOW"
)

// ScheduleType classifies a schedule entry.
type ScheduleType string

const (
	ScheduleOperating     ScheduleType = "OPERATING"
	ScheduleTicketedEvent ScheduleType = "TICKETED_EVENT"
	SchedulePrivateEvent  ScheduleType = "PRIVATE_EVENT"
	ScheduleExtraHours    ScheduleType = "EXTRA_HOURS"
	ScheduleInfo          ScheduleType = "INFO"
)

// LiveStatus is the operating status reported in live data.
type LiveStatus string

const (
	StatusOperating     LiveStatus = "OPERATING"
	StatusDown          LiveStatus = "DOWN"
	StatusClosed        LiveStatus = "CLOSED"
	StatusRefurbishment LiveStatus = "REFURBISHMENT"
)

// Location is a geographic coordinate.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Entity is a destination, park, attraction or other catalogue item.
type Entity struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug,omitempty"`
	Location      *Location  `json:"location,omitempty"`
	ParentID      string     `json:"parentId,omitempty"`
	Timezone      string     `json:"timezone,omitempty"`
	EntityType    EntityType `json:"entityType"`
	DestinationID string     `json:"destinationId,omitempty"`
	ExternalID    string     `json:"externalId,omitempty"`
	Tags          []Tag      `json:"tags,omitempty"`
}

// Tag is a free-form label attached to an entity.
type Tag struct {
	Tag     string `json:"tag"`
	TagName string `json:"tagName,omitempty"`
	ID      string `json:"id,omitempty"`
	Value   any    `json:"value,omitempty"`
}

// Price is an amount in minor units with its currency.
type Price struct {
	Amount    int    `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted,omitempty"`
}

// Purchase is an add-on that can be bought for a schedule entry.
type Purchase struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Price     *Price `json:"price,omitempty"`
	Available bool   `json:"available"`
}

// ScheduleEntry is one dated block of opening hours or an event.
type ScheduleEntry struct {
	Date        string       `json:"date"`
	Type        ScheduleType `json:"type"`
	OpeningTime string       `json:"openingTime,omitempty"`
	ClosingTime string       `json:"closingTime,omitempty"`
	Description string       `json:"description,omitempty"`
	Purchases   []Purchase   `json:"purchases,omitempty"`
}

// Schedule is the schedule document of an entity.
type Schedule struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	EntityType EntityType      `json:"entityType"`
	Timezone   string          `json:"timezone,omitempty"`
	Schedule   []ScheduleEntry `json:"schedule"`
}

// QueueTime is a posted wait time in minutes; nil when not reported.
type QueueTime struct {
	WaitTime *int `json:"waitTime"`
}

// Queue holds the queue types the client consumes.
type Queue struct {
	Standby *QueueTime `json:"STANDBY,omitempty"`
}

// LiveData is the live status of one entity.
type LiveData struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	EntityType  EntityType `json:"entityType"`
	Status      LiveStatus `json:"status,omitempty"`
	LastUpdated string     `json:"lastUpdated,omitempty"`
	Queue       *Queue     `json:"queue,omitempty"`
}

// StandbyWait returns the standby wait in minutes, if reported.
func (l LiveData) StandbyWait() (int, bool) {
	if l.Queue == nil || l.Queue.Standby == nil || l.Queue.Standby.WaitTime == nil {
		return 0, false
	}
	return *l.Queue.Standby.WaitTime, true
}

// Children is the children document of an entity.
type Children struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	EntityType EntityType `json:"entityType"`
	Timezone   string     `json:"timezone,omitempty"`
	Children   []Entity   `json:"children"`
}

type liveResponse struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	LiveData []LiveData `json:"liveData"`
}
