package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/chrisdamba/foodfleet/internal/models"
	"go.uber.org/zap"
)

type KafkaOutput struct {
	producer sarama.SyncProducer
	logger   *zap.Logger
}

func NewKafkaOutput(cfg models.KafkaConfig, logger *zap.Logger) (*KafkaOutput, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // required by SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.BrokerList, ",")
	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	output := NewKafkaOutputWithProducer(producer, logger)
	output.logger.Info("kafka producer created", zap.Strings("brokers", brokerList))
	return output, nil
}

func NewKafkaOutputWithProducer(producer sarama.SyncProducer, logger *zap.Logger) *KafkaOutput {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaOutput{producer: producer, logger: logger}
}

func (k *KafkaOutput) WriteMessage(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("kafka producer is closed")
	}
	partition, offset, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		k.logger.Error("failed to send message", zap.String("topic", topic), zap.Error(err))
		return err
	}
	k.logger.Debug("message sent", zap.String("topic", topic), zap.Int32("partition", partition), zap.Int64("offset", offset))
	return nil
}

func (k *KafkaOutput) Close() error {
	if k.producer == nil {
		return nil
	}
	err := k.producer.Close()
	k.producer = nil
	return err
}
