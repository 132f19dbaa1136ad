// Package events carries patient lifecycle notifications over the message
// bus. Events exist only as serialized messages; nothing is persisted.
package events

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// SubjectPatient is the bus subject all lifecycle events are published to.
const SubjectPatient = "Patient"

const EventTypePatientCreated = "PATIENT_CREATED"

// PatientEvent is the wire envelope, bson-encoded on the bus.
type PatientEvent struct {
	PatientId string `bson:"patientId"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	EventType string `bson:"eventType"`
}

func Encode(event PatientEvent) ([]byte, error) {
	payload, err := bson.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("error encoding patient event: %w", err)
	}
	return payload, nil
}

func Decode(payload []byte) (*PatientEvent, error) {
	event := &PatientEvent{}
	if err := bson.Unmarshal(payload, event); err != nil {
		return nil, fmt.Errorf("error decoding patient event: %w", err)
	}
	return event, nil
}
