package sqlinline

// QCreateSchema is idempotent and applied by cmd/migrate. contributions.issue_id
// is a weak reference with no foreign key.
const QCreateSchema = `--sql 49e1d081-7402-4f04-aed4-24032ed324fa
create table if not exists issues (
    id          uuid primary key,
    seq         bigserial not null unique,
    title       text,
    category    text,
    description text,
    amount      double precision,
    location    text,
    image       text,
    status      text,
    email       text not null,
    date        timestamptz not null
);

create index if not exists idx_issues_status_date on issues (status, date desc);
create index if not exists idx_issues_email on issues (email);

create table if not exists contributions (
    id              uuid primary key,
    seq             bigserial not null unique,
    issue_id        text not null,
    issue_title     text,
    amount          double precision,
    name            text,
    phone           text,
    address         text,
    additional_info text,
    email           text not null,
    date            timestamptz not null
);

create index if not exists idx_contributions_issue_id on contributions (issue_id);
create index if not exists idx_contributions_email_date on contributions (email, date desc);
`

const QPing = `--sql 3894be81-b99c-40da-b19e-5f2f4215c42a
select 1;
`
