package dynamostore

import (
	"context"
	"errors"
	"net"

	"assistencia_tecnica/internal/domain/docstore"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// mapError classifies an SDK failure into a store code.
func mapError(op, collection string, err error) error {
	return docstore.NewError(codeOf(err), op, collection, err)
}

func codeOf(err error) docstore.Code {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return docstore.CodeDeadlineExceeded
	case errors.Is(err, context.Canceled):
		return docstore.CodeAborted
	}

	var (
		notFound    *types.ResourceNotFoundException
		throughput  *types.ProvisionedThroughputExceededException
		limit       *types.RequestLimitExceeded
		conflict    *types.TransactionConflictException
		internal    *types.InternalServerError
		collSize    *types.ItemCollectionSizeLimitExceededException
		conditional *types.ConditionalCheckFailedException
	)
	switch {
	case errors.As(err, &notFound):
		return docstore.CodeNotFound
	case errors.As(err, &throughput), errors.As(err, &limit):
		return docstore.CodeUnavailable
	case errors.As(err, &conflict):
		return docstore.CodeAborted
	case errors.As(err, &internal):
		return docstore.CodeInternal
	case errors.As(err, &collSize):
		return docstore.CodeOutOfRange
	case errors.As(err, &conditional):
		return docstore.CodeFailedPrecondition
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException", "ServiceUnavailable", "ServiceUnavailableException":
			return docstore.CodeUnavailable
		case "UnrecognizedClientException", "InvalidSignatureException", "ExpiredTokenException",
			"MissingAuthenticationToken", "IncompleteSignature", "InvalidClientTokenId":
			return docstore.CodeUnauthenticated
		case "AccessDeniedException":
			return docstore.CodePermissionDenied
		case "ValidationException", "SerializationException":
			return docstore.CodeFailedPrecondition
		case "UnknownOperationException":
			return docstore.CodeUnimplemented
		}
		if apiErr.ErrorFault() == smithy.FaultServer {
			return docstore.CodeInternal
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return docstore.CodeUnavailable
	}
	return docstore.CodeUnknown
}
