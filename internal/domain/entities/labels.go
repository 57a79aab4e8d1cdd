package entities

// Display labels used by the marketplace views. State checks never read them.

var requestStatusLabels = map[RequestStatus]string{
	RequestStatusPending:   "견적 대기중",
	RequestStatusApproved:  "승인됨",
	RequestStatusRejected:  "거절됨",
	RequestStatusExpired:   "기간 만료",
	RequestStatusCompleted: "거래 완료",
}

var quoteStatusLabels = map[QuoteStatus]string{
	QuoteStatusDraft:     "작성중",
	QuoteStatusSubmitted: "제출됨",
	QuoteStatusSelected:  "선택됨",
	QuoteStatusRejected:  "미선정",
}

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusReceived:  "주문 접수",
	OrderStatusPreparing: "배송 준비중",
	OrderStatusShipping:  "배송중",
	OrderStatusDelivered: "배송 완료",
	OrderStatusCancelled: "주문 취소",

	OrderStatusPendingPayment: "결제 진행중",
	OrderStatusPaymentFailed:  "결제 실패",
}

func (s RequestStatus) Label() string { return labelOr(requestStatusLabels[s], string(s)) }

func (s QuoteStatus) Label() string { return labelOr(quoteStatusLabels[s], string(s)) }

func (s OrderStatus) Label() string { return labelOr(orderStatusLabels[s], string(s)) }

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
