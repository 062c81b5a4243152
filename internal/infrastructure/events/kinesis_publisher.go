// Package events publishes job lifecycle events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"go.uber.org/zap"
)

// KinesisAPI is the subset of *kinesis.Client used by the publisher.
type KinesisAPI interface {
	PutRecord(ctx context.Context, params *kinesis.PutRecordInput, optFns ...func(*kinesis.Options)) (*kinesis.PutRecordOutput, error)
}

// KinesisPublisher writes one record per job event, partitioned by job id so
// events of a job stay ordered.
type KinesisPublisher struct {
	client     KinesisAPI
	streamName string
	logger     *zap.Logger
}

var _ interfaces.IJobEventPublisher = (*KinesisPublisher)(nil)

func NewKinesisPublisher(client KinesisAPI, streamName string, logger *zap.Logger) *KinesisPublisher {
	return &KinesisPublisher{client: client, streamName: streamName, logger: logger.Named("events")}
}

func (p *KinesisPublisher) Publish(ctx context.Context, event entities.JobEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal job event: %w", err)
	}

	_, err = p.client.PutRecord(ctx, &kinesis.PutRecordInput{
		StreamName:   aws.String(p.streamName),
		Data:         data,
		PartitionKey: aws.String(event.JobID),
	})
	if err != nil {
		return fmt.Errorf("put job event: %w", err)
	}
	p.logger.Debug("[events][kinesis] job event streamed", zap.String("job_id", event.JobID), zap.String("type", string(event.Type)))
	return nil
}

// LogPublisher only logs events. It is used when no stream is configured.
type LogPublisher struct {
	logger *zap.Logger
}

var _ interfaces.IJobEventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.Named("events")}
}

func (p *LogPublisher) Publish(_ context.Context, event entities.JobEvent) error {
	p.logger.Info("[events][log] job event",
		zap.String("job_id", event.JobID),
		zap.String("type", string(event.Type)),
		zap.String("status", string(event.Status)),
	)
	return nil
}
