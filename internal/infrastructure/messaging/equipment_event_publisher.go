package messaging

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/infrastructure/logger"
	"catalogo_equipamentos/internal/usecase/interfaces"
)

// EquipmentEventPublisher publishes every committed change as a JSON message
// keyed by equipment id. Delivery failures are logged and swallowed.
type EquipmentEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

var _ interfaces.IEquipmentChangeNotifier = (*EquipmentEventPublisher)(nil)

func NewEquipmentEventPublisher(producer sarama.SyncProducer, topic string) *EquipmentEventPublisher {
	return &EquipmentEventPublisher{producer: producer, topic: topic}
}

func (p *EquipmentEventPublisher) EquipmentChanged(ctx context.Context, change entities.EquipmentChange) {
	value, err := json.Marshal(change)
	if err != nil {
		logger.Error(ctx, "[equipment][events] marshal failed", logger.String("equipment_id", change.ID), logger.ErrorF(err))
		return
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(change.ID),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("kind"), Value: []byte(change.Kind)},
		},
	})
	if err != nil {
		logger.Error(ctx, "[equipment][events] publish failed",
			logger.String("topic", p.topic),
			logger.String("equipment_id", change.ID),
			logger.ErrorF(err),
		)
		return
	}

	logger.Debug(ctx, "[equipment][events] published",
		logger.String("topic", p.topic),
		logger.String("equipment_id", change.ID),
		logger.Int32("partition", partition),
		logger.Int64("offset", offset),
	)
}

func (p *EquipmentEventPublisher) Close() error {
	return p.producer.Close()
}
