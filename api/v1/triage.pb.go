// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: triage.proto

package apiv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ProcessFeedbackRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	ReviewsPath string                 `protobuf:"bytes,1,opt,name=reviews_path,json=reviewsPath,proto3" json:"reviews_path,omitempty"`
	EmailsPath  string                 `protobuf:"bytes,2,opt,name=emails_path,json=emailsPath,proto3" json:"emails_path,omitempty"`
	// When set, tickets are also written to this flat CSV.
	ExportPath    string `protobuf:"bytes,3,opt,name=export_path,json=exportPath,proto3" json:"export_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessFeedbackRequest) Reset() {
	*x = ProcessFeedbackRequest{}
	mi := &file_triage_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessFeedbackRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessFeedbackRequest) ProtoMessage() {}

func (x *ProcessFeedbackRequest) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessFeedbackRequest.ProtoReflect.Descriptor instead.
func (*ProcessFeedbackRequest) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessFeedbackRequest) GetReviewsPath() string {
	if x != nil {
		return x.ReviewsPath
	}
	return ""
}

func (x *ProcessFeedbackRequest) GetEmailsPath() string {
	if x != nil {
		return x.EmailsPath
	}
	return ""
}

func (x *ProcessFeedbackRequest) GetExportPath() string {
	if x != nil {
		return x.ExportPath
	}
	return ""
}

type BatchMetrics struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	TotalFeedback     int64                  `protobuf:"varint,1,opt,name=total_feedback,json=totalFeedback,proto3" json:"total_feedback,omitempty"`
	Bugs              int64                  `protobuf:"varint,2,opt,name=bugs,proto3" json:"bugs,omitempty"`
	Features          int64                  `protobuf:"varint,3,opt,name=features,proto3" json:"features,omitempty"`
	Praise            int64                  `protobuf:"varint,4,opt,name=praise,proto3" json:"praise,omitempty"`
	Complaints        int64                  `protobuf:"varint,5,opt,name=complaints,proto3" json:"complaints,omitempty"`
	Spam              int64                  `protobuf:"varint,6,opt,name=spam,proto3" json:"spam,omitempty"`
	TicketsCreated    int64                  `protobuf:"varint,7,opt,name=tickets_created,json=ticketsCreated,proto3" json:"tickets_created,omitempty"`
	ProcessingSeconds float64                `protobuf:"fixed64,8,opt,name=processing_seconds,json=processingSeconds,proto3" json:"processing_seconds,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *BatchMetrics) Reset() {
	*x = BatchMetrics{}
	mi := &file_triage_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchMetrics) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchMetrics) ProtoMessage() {}

func (x *BatchMetrics) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchMetrics.ProtoReflect.Descriptor instead.
func (*BatchMetrics) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{1}
}

func (x *BatchMetrics) GetTotalFeedback() int64 {
	if x != nil {
		return x.TotalFeedback
	}
	return 0
}

func (x *BatchMetrics) GetBugs() int64 {
	if x != nil {
		return x.Bugs
	}
	return 0
}

func (x *BatchMetrics) GetFeatures() int64 {
	if x != nil {
		return x.Features
	}
	return 0
}

func (x *BatchMetrics) GetPraise() int64 {
	if x != nil {
		return x.Praise
	}
	return 0
}

func (x *BatchMetrics) GetComplaints() int64 {
	if x != nil {
		return x.Complaints
	}
	return 0
}

func (x *BatchMetrics) GetSpam() int64 {
	if x != nil {
		return x.Spam
	}
	return 0
}

func (x *BatchMetrics) GetTicketsCreated() int64 {
	if x != nil {
		return x.TicketsCreated
	}
	return 0
}

func (x *BatchMetrics) GetProcessingSeconds() float64 {
	if x != nil {
		return x.ProcessingSeconds
	}
	return 0
}

type ProcessFeedbackResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Metrics       *BatchMetrics          `protobuf:"bytes,1,opt,name=metrics,proto3" json:"metrics,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessFeedbackResponse) Reset() {
	*x = ProcessFeedbackResponse{}
	mi := &file_triage_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessFeedbackResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessFeedbackResponse) ProtoMessage() {}

func (x *ProcessFeedbackResponse) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessFeedbackResponse.ProtoReflect.Descriptor instead.
func (*ProcessFeedbackResponse) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessFeedbackResponse) GetMetrics() *BatchMetrics {
	if x != nil {
		return x.Metrics
	}
	return nil
}

type GetTicketsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Priority      string                 `protobuf:"bytes,2,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTicketsRequest) Reset() {
	*x = GetTicketsRequest{}
	mi := &file_triage_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTicketsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTicketsRequest) ProtoMessage() {}

func (x *GetTicketsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTicketsRequest.ProtoReflect.Descriptor instead.
func (*GetTicketsRequest) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{3}
}

func (x *GetTicketsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *GetTicketsRequest) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

type Ticket struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TicketId      string                 `protobuf:"bytes,1,opt,name=ticket_id,json=ticketId,proto3" json:"ticket_id,omitempty"`
	SourceId      string                 `protobuf:"bytes,2,opt,name=source_id,json=sourceId,proto3" json:"source_id,omitempty"`
	SourceType    string                 `protobuf:"bytes,3,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"`
	Category      string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Title         string                 `protobuf:"bytes,5,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	Priority      string                 `protobuf:"bytes,7,opt,name=priority,proto3" json:"priority,omitempty"`
	Status        string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	AssignedTo    string                 `protobuf:"bytes,9,opt,name=assigned_to,json=assignedTo,proto3" json:"assigned_to,omitempty"`
	Tags          string                 `protobuf:"bytes,10,opt,name=tags,proto3" json:"tags,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Confidence    float64                `protobuf:"fixed64,12,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Ticket) Reset() {
	*x = Ticket{}
	mi := &file_triage_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ticket) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ticket) ProtoMessage() {}

func (x *Ticket) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ticket.ProtoReflect.Descriptor instead.
func (*Ticket) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{4}
}

func (x *Ticket) GetTicketId() string {
	if x != nil {
		return x.TicketId
	}
	return ""
}

func (x *Ticket) GetSourceId() string {
	if x != nil {
		return x.SourceId
	}
	return ""
}

func (x *Ticket) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

func (x *Ticket) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Ticket) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Ticket) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Ticket) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *Ticket) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Ticket) GetAssignedTo() string {
	if x != nil {
		return x.AssignedTo
	}
	return ""
}

func (x *Ticket) GetTags() string {
	if x != nil {
		return x.Tags
	}
	return ""
}

func (x *Ticket) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Ticket) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type GetTicketsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Tickets       []*Ticket              `protobuf:"bytes,1,rep,name=tickets,proto3" json:"tickets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTicketsResponse) Reset() {
	*x = GetTicketsResponse{}
	mi := &file_triage_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTicketsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTicketsResponse) ProtoMessage() {}

func (x *GetTicketsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTicketsResponse.ProtoReflect.Descriptor instead.
func (*GetTicketsResponse) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{5}
}

func (x *GetTicketsResponse) GetTickets() []*Ticket {
	if x != nil {
		return x.Tickets
	}
	return nil
}

type GetPriorityBreakdownRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPriorityBreakdownRequest) Reset() {
	*x = GetPriorityBreakdownRequest{}
	mi := &file_triage_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPriorityBreakdownRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPriorityBreakdownRequest) ProtoMessage() {}

func (x *GetPriorityBreakdownRequest) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPriorityBreakdownRequest.ProtoReflect.Descriptor instead.
func (*GetPriorityBreakdownRequest) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{6}
}

type PriorityCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Priority      string                 `protobuf:"bytes,1,opt,name=priority,proto3" json:"priority,omitempty"`
	Count         int64                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PriorityCount) Reset() {
	*x = PriorityCount{}
	mi := &file_triage_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PriorityCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PriorityCount) ProtoMessage() {}

func (x *PriorityCount) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PriorityCount.ProtoReflect.Descriptor instead.
func (*PriorityCount) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{7}
}

func (x *PriorityCount) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *PriorityCount) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

type GetPriorityBreakdownResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Counts        []*PriorityCount       `protobuf:"bytes,1,rep,name=counts,proto3" json:"counts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPriorityBreakdownResponse) Reset() {
	*x = GetPriorityBreakdownResponse{}
	mi := &file_triage_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPriorityBreakdownResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPriorityBreakdownResponse) ProtoMessage() {}

func (x *GetPriorityBreakdownResponse) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPriorityBreakdownResponse.ProtoReflect.Descriptor instead.
func (*GetPriorityBreakdownResponse) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{8}
}

func (x *GetPriorityBreakdownResponse) GetCounts() []*PriorityCount {
	if x != nil {
		return x.Counts
	}
	return nil
}

type ReviewTicketsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewTicketsRequest) Reset() {
	*x = ReviewTicketsRequest{}
	mi := &file_triage_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewTicketsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewTicketsRequest) ProtoMessage() {}

func (x *ReviewTicketsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewTicketsRequest.ProtoReflect.Descriptor instead.
func (*ReviewTicketsRequest) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{9}
}

type TicketIssues struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TicketId      string                 `protobuf:"bytes,1,opt,name=ticket_id,json=ticketId,proto3" json:"ticket_id,omitempty"`
	Issues        []string               `protobuf:"bytes,2,rep,name=issues,proto3" json:"issues,omitempty"`
	QualityScore  int64                  `protobuf:"varint,3,opt,name=quality_score,json=qualityScore,proto3" json:"quality_score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TicketIssues) Reset() {
	*x = TicketIssues{}
	mi := &file_triage_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TicketIssues) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TicketIssues) ProtoMessage() {}

func (x *TicketIssues) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TicketIssues.ProtoReflect.Descriptor instead.
func (*TicketIssues) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{10}
}

func (x *TicketIssues) GetTicketId() string {
	if x != nil {
		return x.TicketId
	}
	return ""
}

func (x *TicketIssues) GetIssues() []string {
	if x != nil {
		return x.Issues
	}
	return nil
}

func (x *TicketIssues) GetQualityScore() int64 {
	if x != nil {
		return x.QualityScore
	}
	return 0
}

type QualityReport struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	TotalTickets        int64                  `protobuf:"varint,1,opt,name=total_tickets,json=totalTickets,proto3" json:"total_tickets,omitempty"`
	Approved            int64                  `protobuf:"varint,2,opt,name=approved,proto3" json:"approved,omitempty"`
	Rejected            int64                  `protobuf:"varint,3,opt,name=rejected,proto3" json:"rejected,omitempty"`
	TicketsWithIssues   []*TicketIssues        `protobuf:"bytes,4,rep,name=tickets_with_issues,json=ticketsWithIssues,proto3" json:"tickets_with_issues,omitempty"`
	AverageQualityScore float64                `protobuf:"fixed64,5,opt,name=average_quality_score,json=averageQualityScore,proto3" json:"average_quality_score,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *QualityReport) Reset() {
	*x = QualityReport{}
	mi := &file_triage_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QualityReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QualityReport) ProtoMessage() {}

func (x *QualityReport) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QualityReport.ProtoReflect.Descriptor instead.
func (*QualityReport) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{11}
}

func (x *QualityReport) GetTotalTickets() int64 {
	if x != nil {
		return x.TotalTickets
	}
	return 0
}

func (x *QualityReport) GetApproved() int64 {
	if x != nil {
		return x.Approved
	}
	return 0
}

func (x *QualityReport) GetRejected() int64 {
	if x != nil {
		return x.Rejected
	}
	return 0
}

func (x *QualityReport) GetTicketsWithIssues() []*TicketIssues {
	if x != nil {
		return x.TicketsWithIssues
	}
	return nil
}

func (x *QualityReport) GetAverageQualityScore() float64 {
	if x != nil {
		return x.AverageQualityScore
	}
	return 0
}

type ReviewTicketsResponse struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Report *QualityReport         `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	// Human-readable rendering of the report.
	Rendered      string `protobuf:"bytes,2,opt,name=rendered,proto3" json:"rendered,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewTicketsResponse) Reset() {
	*x = ReviewTicketsResponse{}
	mi := &file_triage_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewTicketsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewTicketsResponse) ProtoMessage() {}

func (x *ReviewTicketsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewTicketsResponse.ProtoReflect.Descriptor instead.
func (*ReviewTicketsResponse) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{12}
}

func (x *ReviewTicketsResponse) GetReport() *QualityReport {
	if x != nil {
		return x.Report
	}
	return nil
}

func (x *ReviewTicketsResponse) GetRendered() string {
	if x != nil {
		return x.Rendered
	}
	return ""
}

type ChatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Prompt        string                 `protobuf:"bytes,1,opt,name=prompt,proto3" json:"prompt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatRequest) Reset() {
	*x = ChatRequest{}
	mi := &file_triage_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatRequest) ProtoMessage() {}

func (x *ChatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatRequest.ProtoReflect.Descriptor instead.
func (*ChatRequest) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{13}
}

func (x *ChatRequest) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

type ChatResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reply         string                 `protobuf:"bytes,1,opt,name=reply,proto3" json:"reply,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatResponse) Reset() {
	*x = ChatResponse{}
	mi := &file_triage_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatResponse) ProtoMessage() {}

func (x *ChatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_triage_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatResponse.ProtoReflect.Descriptor instead.
func (*ChatResponse) Descriptor() ([]byte, []int) {
	return file_triage_proto_rawDescGZIP(), []int{14}
}

func (x *ChatResponse) GetReply() string {
	if x != nil {
		return x.Reply
	}
	return ""
}

var File_triage_proto protoreflect.FileDescriptor

const file_triage_proto_rawDesc = "" +
	"\n" +
	"\ftriage.proto\x12\ttriage.v1\"}\n" +
	"\x16ProcessFeedbackRequest\x12!\n" +
	"\freviews_path\x18\x01 \x01(\tR\vreviewsPath\x12\x1f\n" +
	"\vemails_path\x18\x02 \x01(\tR\n" +
	"emailsPath\x12\x1f\n" +
	"\vexport_path\x18\x03 \x01(\tR\n" +
	"exportPath\"\x89\x02\n" +
	"\fBatchMetrics\x12%\n" +
	"\x0etotal_feedback\x18\x01 \x01(\x03R\rtotalFeedback\x12\x12\n" +
	"\x04bugs\x18\x02 \x01(\x03R\x04bugs\x12\x1a\n" +
	"\bfeatures\x18\x03 \x01(\x03R\bfeatures\x12\x16\n" +
	"\x06praise\x18\x04 \x01(\x03R\x06praise\x12\x1e\n" +
	"\n" +
	"complaints\x18\x05 \x01(\x03R\n" +
	"complaints\x12\x12\n" +
	"\x04spam\x18\x06 \x01(\x03R\x04spam\x12'\n" +
	"\x0ftickets_created\x18\a \x01(\x03R\x0eticketsCreated\x12-\n" +
	"\x12processing_seconds\x18\b \x01(\x01R\x11processingSeconds\"L\n" +
	"\x17ProcessFeedbackResponse\x121\n" +
	"\ametrics\x18\x01 \x01(\v2\x17.triage.v1.BatchMetricsR\ametrics\"K\n" +
	"\x11GetTicketsRequest\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x1a\n" +
	"\bpriority\x18\x02 \x01(\tR\bpriority\"\xdf\x02\n" +
	"\x06Ticket\x12\x1b\n" +
	"\tticket_id\x18\x01 \x01(\tR\bticketId\x12\x1b\n" +
	"\tsource_id\x18\x02 \x01(\tR\bsourceId\x12\x1f\n" +
	"\vsource_type\x18\x03 \x01(\tR\n" +
	"sourceType\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12\x14\n" +
	"\x05title\x18\x05 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x12\x1a\n" +
	"\bpriority\x18\a \x01(\tR\bpriority\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12\x1f\n" +
	"\vassigned_to\x18\t \x01(\tR\n" +
	"assignedTo\x12\x12\n" +
	"\x04tags\x18\n" +
	" \x01(\tR\x04tags\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1e\n" +
	"\n" +
	"confidence\x18\f \x01(\x01R\n" +
	"confidence\"A\n" +
	"\x12GetTicketsResponse\x12+\n" +
	"\atickets\x18\x01 \x03(\v2\x11.triage.v1.TicketR\atickets\"\x1d\n" +
	"\x1bGetPriorityBreakdownRequest\"A\n" +
	"\rPriorityCount\x12\x1a\n" +
	"\bpriority\x18\x01 \x01(\tR\bpriority\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x03R\x05count\"P\n" +
	"\x1cGetPriorityBreakdownResponse\x120\n" +
	"\x06counts\x18\x01 \x03(\v2\x18.triage.v1.PriorityCountR\x06counts\"\x16\n" +
	"\x14ReviewTicketsRequest\"h\n" +
	"\fTicketIssues\x12\x1b\n" +
	"\tticket_id\x18\x01 \x01(\tR\bticketId\x12\x16\n" +
	"\x06issues\x18\x02 \x03(\tR\x06issues\x12#\n" +
	"\rquality_score\x18\x03 \x01(\x03R\fqualityScore\"\xe9\x01\n" +
	"\rQualityReport\x12#\n" +
	"\rtotal_tickets\x18\x01 \x01(\x03R\ftotalTickets\x12\x1a\n" +
	"\bapproved\x18\x02 \x01(\x03R\bapproved\x12\x1a\n" +
	"\brejected\x18\x03 \x01(\x03R\brejected\x12G\n" +
	"\x13tickets_with_issues\x18\x04 \x03(\v2\x17.triage.v1.TicketIssuesR\x11ticketsWithIssues\x122\n" +
	"\x15average_quality_score\x18\x05 \x01(\x01R\x13averageQualityScore\"e\n" +
	"\x15ReviewTicketsResponse\x120\n" +
	"\x06report\x18\x01 \x01(\v2\x18.triage.v1.QualityReportR\x06report\x12\x1a\n" +
	"\brendered\x18\x02 \x01(\tR\brendered\"%\n" +
	"\vChatRequest\x12\x16\n" +
	"\x06prompt\x18\x01 \x01(\tR\x06prompt\"$\n" +
	"\fChatResponse\x12\x14\n" +
	"\x05reply\x18\x01 \x01(\tR\x05reply2\xab\x03\n" +
	"\x0eFeedbackTriage\x12X\n" +
	"\x0fProcessFeedback\x12!.triage.v1.ProcessFeedbackRequest\x1a\".triage.v1.ProcessFeedbackResponse\x12I\n" +
	"\n" +
	"GetTickets\x12\x1c.triage.v1.GetTicketsRequest\x1a\x1d.triage.v1.GetTicketsResponse\x12g\n" +
	"\x14GetPriorityBreakdown\x12&.triage.v1.GetPriorityBreakdownRequest\x1a'.triage.v1.GetPriorityBreakdownResponse\x12R\n" +
	"\rReviewTickets\x12\x1f.triage.v1.ReviewTicketsRequest\x1a .triage.v1.ReviewTicketsResponse\x127\n" +
	"\x04Chat\x12\x16.triage.v1.ChatRequest\x1a\x17.triage.v1.ChatResponseB0Z.github.com/godilite/triage-server/api/v1;apiv1b\x06proto3"

var (
	file_triage_proto_rawDescOnce sync.Once
	file_triage_proto_rawDescData []byte
)

func file_triage_proto_rawDescGZIP() []byte {
	file_triage_proto_rawDescOnce.Do(func() {
		file_triage_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_triage_proto_rawDesc), len(file_triage_proto_rawDesc)))
	})
	return file_triage_proto_rawDescData
}

var file_triage_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_triage_proto_goTypes = []any{
	(*ProcessFeedbackRequest)(nil),       // 0: triage.v1.ProcessFeedbackRequest
	(*BatchMetrics)(nil),                 // 1: triage.v1.BatchMetrics
	(*ProcessFeedbackResponse)(nil),      // 2: triage.v1.ProcessFeedbackResponse
	(*GetTicketsRequest)(nil),            // 3: triage.v1.GetTicketsRequest
	(*Ticket)(nil),                       // 4: triage.v1.Ticket
	(*GetTicketsResponse)(nil),           // 5: triage.v1.GetTicketsResponse
	(*GetPriorityBreakdownRequest)(nil),  // 6: triage.v1.GetPriorityBreakdownRequest
	(*PriorityCount)(nil),                // 7: triage.v1.PriorityCount
	(*GetPriorityBreakdownResponse)(nil), // 8: triage.v1.GetPriorityBreakdownResponse
	(*ReviewTicketsRequest)(nil),         // 9: triage.v1.ReviewTicketsRequest
	(*TicketIssues)(nil),                 // 10: triage.v1.TicketIssues
	(*QualityReport)(nil),                // 11: triage.v1.QualityReport
	(*ReviewTicketsResponse)(nil),        // 12: triage.v1.ReviewTicketsResponse
	(*ChatRequest)(nil),                  // 13: triage.v1.ChatRequest
	(*ChatResponse)(nil),                 // 14: triage.v1.ChatResponse
}
var file_triage_proto_depIdxs = []int32{
	1,  // 0: triage.v1.ProcessFeedbackResponse.metrics:type_name -> triage.v1.BatchMetrics
	4,  // 1: triage.v1.GetTicketsResponse.tickets:type_name -> triage.v1.Ticket
	7,  // 2: triage.v1.GetPriorityBreakdownResponse.counts:type_name -> triage.v1.PriorityCount
	10, // 3: triage.v1.QualityReport.tickets_with_issues:type_name -> triage.v1.TicketIssues
	11, // 4: triage.v1.ReviewTicketsResponse.report:type_name -> triage.v1.QualityReport
	0,  // 5: triage.v1.FeedbackTriage.ProcessFeedback:input_type -> triage.v1.ProcessFeedbackRequest
	3,  // 6: triage.v1.FeedbackTriage.GetTickets:input_type -> triage.v1.GetTicketsRequest
	6,  // 7: triage.v1.FeedbackTriage.GetPriorityBreakdown:input_type -> triage.v1.GetPriorityBreakdownRequest
	9,  // 8: triage.v1.FeedbackTriage.ReviewTickets:input_type -> triage.v1.ReviewTicketsRequest
	13, // 9: triage.v1.FeedbackTriage.Chat:input_type -> triage.v1.ChatRequest
	2,  // 10: triage.v1.FeedbackTriage.ProcessFeedback:output_type -> triage.v1.ProcessFeedbackResponse
	5,  // 11: triage.v1.FeedbackTriage.GetTickets:output_type -> triage.v1.GetTicketsResponse
	8,  // 12: triage.v1.FeedbackTriage.GetPriorityBreakdown:output_type -> triage.v1.GetPriorityBreakdownResponse
	12, // 13: triage.v1.FeedbackTriage.ReviewTickets:output_type -> triage.v1.ReviewTicketsResponse
	14, // 14: triage.v1.FeedbackTriage.Chat:output_type -> triage.v1.ChatResponse
	10, // [10:15] is the sub-list for method output_type
	5,  // [5:10] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_triage_proto_init() }
func file_triage_proto_init() {
	if File_triage_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_triage_proto_rawDesc), len(file_triage_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_triage_proto_goTypes,
		DependencyIndexes: file_triage_proto_depIdxs,
		MessageInfos:      file_triage_proto_msgTypes,
	}.Build()
	File_triage_proto = out.File
	file_triage_proto_goTypes = nil
	file_triage_proto_depIdxs = nil
}
