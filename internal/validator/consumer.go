package validator

var consumerSchema = mustLoadSchema("consumer.json")

// ConsumerValidator validates a container consumer registration.
type ConsumerValidator struct {
	base
}

// NewConsumerValidator creates a ConsumerValidator.
func NewConsumerValidator() *ConsumerValidator {
	return &ConsumerValidator{base: base{name: "Consumer", schema: consumerSchema}}
}

// Validate checks that name and URL are present strings.
func (v *ConsumerValidator) Validate(doc Document, parentSchema string) (Document, error) {
	if err := v.assertSchemaIsValid(doc, v.fullName(parentSchema)); err != nil {
		return nil, err
	}
	return doc, nil
}
